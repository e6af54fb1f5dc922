// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: patient.go — shared patient record for the triage system
//
// Purpose:
//   - Defines the admission record every container in the system carries.
//   - Owns the canonical one-line rendering and its SHA3-256 fingerprint,
//     which the store keeps beside each row and re-verifies on load.
//
// Notes:
//   - JSON tags serve the intake and export paths.
//   - Containers never look inside the record; ordering and identity travel
//     as explicit functions (Less, SameID).
// ─────────────────────────────────────────────────────────────────────────────

package patient

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"triage/utils"
)

// Patient is one admission record. ID is assigned by the hospital system
// and never reused.
type Patient struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Priority int    `json:"priority"`
	Symptom  string `json:"symptom"`
}

// Less orders records by clinical urgency: lower priority numbers first.
func Less(a, b *Patient) bool { return a.Priority < b.Priority }

// SameID builds a predicate matching a record by identity, for container
// scans (Contains, FindPosition).
func SameID(id int64) func(*Patient) bool {
	return func(p *Patient) bool { return p != nil && p.ID == id }
}

// AppendLine renders the canonical record line onto dst:
//
//	ID: <id> | <name> | Age: <age> | Priority: <p> | Symptom: <s>
//
// Reports and the fingerprint share this exact form.
func (p *Patient) AppendLine(dst []byte) []byte {
	dst = append(dst, "ID: "...)
	dst = utils.AppendInt(dst, p.ID)
	dst = append(dst, " | "...)
	dst = append(dst, p.Name...)
	dst = append(dst, " | Age: "...)
	dst = utils.AppendInt(dst, int64(p.Age))
	dst = append(dst, " | Priority: "...)
	dst = utils.AppendInt(dst, int64(p.Priority))
	dst = append(dst, " | Symptom: "...)
	dst = append(dst, p.Symptom...)
	return dst
}

// String returns the canonical record line.
func (p *Patient) String() string { return string(p.AppendLine(nil)) }

// Fingerprint digests the canonical line with SHA3-256. Any field change
// changes the digest, so a stored row that no longer matches its
// fingerprint was altered outside the system.
func (p *Patient) Fingerprint() [32]byte {
	return sha3.Sum256(p.AppendLine(nil))
}

// FingerprintHex is the hex form the store persists.
func (p *Patient) FingerprintHex() string {
	sum := p.Fingerprint()
	return hex.EncodeToString(sum[:])
}
