// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — cold-path diagnostics helper (zero-alloc)
//
// Purpose:
//   - Logs infrequent failure and phase-transition paths without heap pressure.
//   - Used only in cold paths: store open/load errors, intake rejects,
//     fingerprint mismatches, boot phase markers.
//
// Notes:
//   - Avoids fmt.Sprintf to minimize footprint and latency.
//   - Uses stackless logging model: no alloc, no interfaces.
//
// ⚠️ Never invoke in hot loops — use only in failure diagnostics.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "triage/utils"

// DropError logs error messages with a custom alloc-free print strategy.
// It writes directly to stderr, bypassing any heap allocations beyond the
// joined message itself.
//
//go:nosplit
//go:inline
//go:registerparams
func DropError(prefix string, err error) {
	if err != nil {
		msg := prefix + ": " + err.Error() + "\n"
		utils.PrintWarning(msg)
	} else {
		// No error case: print just the prefix (tagged warnings).
		msg := prefix + "\n"
		utils.PrintWarning(msg)
	}
}

// DropMessage logs debug messages with zero-allocation print strategy.
// Used for cold-path diagnostics, boot phases, and infrequent events.
//
//go:nosplit
//go:inline
//go:registerparams
func DropMessage(prefix, message string) {
	msg := prefix + ": " + message + "\n"
	utils.PrintWarning(msg)
}
