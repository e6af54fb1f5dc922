package utils

import (
	"os"
	"unsafe"
)

///////////////////////////////////////////////////////////////////////////////
// Conversion Utilities — Zero-Alloc Casts
///////////////////////////////////////////////////////////////////////////////

// B2s converts a []byte to a string **without** allocation.
// ⚠️ Caller must ensure the input slice remains valid and unchanged.
// Used for human-readable print paths.
//
//go:nosplit
//go:inline
func B2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

///////////////////////////////////////////////////////////////////////////////
// Integer Rendering — fmt-Free Formatting
///////////////////////////////////////////////////////////////////////////////

// AppendInt appends the decimal form of v to dst and returns the extended
// slice. Handles the full int64 range including math.MinInt64.
//
//go:nosplit
//go:inline
func AppendInt(dst []byte, v int64) []byte {
	var tmp [20]byte
	u := uint64(v)
	if v < 0 {
		dst = append(dst, '-')
		u = -u
	}
	i := len(tmp)
	for {
		i--
		tmp[i] = byte('0' + u%10)
		u /= 10
		if u == 0 {
			break
		}
	}
	return append(dst, tmp[i:]...)
}

// Itoa renders v as a decimal string. Allocation-free for the digit pass;
// a single string allocation at the end.
//
//go:inline
func Itoa(v int64) string {
	var tmp [20]byte
	return string(AppendInt(tmp[:0], v))
}

///////////////////////////////////////////////////////////////////////////////
// Token Parsing — Decimal Fields
///////////////////////////////////////////////////////////////////////////////

// ParseInt parses a signed decimal token in full. Returns false on an empty
// token, a bare sign, any non-digit byte, or int64 overflow.
//
//go:nosplit
//go:inline
func ParseInt(b []byte) (int64, bool) {
	if len(b) == 0 {
		return 0, false
	}
	neg := false
	if b[0] == '-' || b[0] == '+' {
		neg = b[0] == '-'
		b = b[1:]
		if len(b) == 0 {
			return 0, false
		}
	}
	const cutoff = uint64(1) << 63 // overflow bound for the magnitude
	var u uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		d := uint64(c - '0')
		if u > (cutoff-d)/10 {
			return 0, false
		}
		u = u*10 + d
	}
	if neg {
		return -int64(u), true
	}
	if u >= cutoff {
		return 0, false
	}
	return int64(u), true
}

///////////////////////////////////////////////////////////////////////////////
// Diagnostics Output
///////////////////////////////////////////////////////////////////////////////

// PrintWarning writes msg to stderr verbatim (callers supply the trailing
// newline). Write errors are discarded — diagnostics never take the caller
// down with them.
//
//go:nosplit
func PrintWarning(msg string) {
	os.Stderr.WriteString(msg)
}
