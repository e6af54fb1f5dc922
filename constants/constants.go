// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: constants.go — Global Hospital Tunables & Validation Bounds
//
// Purpose:
//   - Defines system-wide constants for triage, consultation, and the registry.
//   - Centralizes the patient validation bounds the admission path enforces.
//
// Notes:
//   - Container packages take these as constructor arguments; nothing below
//     leaks into the collections core.
//
// ⚠️ No runtime logic here — all values must be compile-time resolvable
// ─────────────────────────────────────────────────────────────────────────────

package constants

// ───────────────────────────── Triage & Rooms ──────────────────────────────

const (
	// TriageLevels is the number of urgency levels the triage queue buckets
	// patients into. Level 1 is critical, level TriageLevels is routine.
	// Priorities outside [1, TriageLevels] are rejected at admission.
	TriageLevels = 3

	// ConsultationRooms is the fixed number of consultation slots. The room
	// queue wraps around this capacity and never grows; admission stalls
	// (AttendNext fails) when every room is occupied.
	ConsultationRooms = 3
)

// ───────────────────────────── Registry Sizing ──────────────────────────────

const (
	// RegistryCapacity seeds the patient registry array. The registry grows
	// by the golden-ratio schedule past this point, so the value only
	// determines how many admissions happen before the first reallocation.
	RegistryCapacity = 100

	// IDIndexSeed seeds the patient-ID index. Like the registry, the index
	// grows on demand; the seed just avoids early rehashes.
	IDIndexSeed = 256
)

// ──────────────────────────── Validation Bounds ─────────────────────────────

const (
	// MaxPatientAge bounds the age accepted at admission. Ages must fall in
	// (0, MaxPatientAge]; zero, negative, and larger values are rejected.
	MaxPatientAge = 150

	// MaxNameLen and MaxSymptomLen bound free-text fields before they reach
	// the store. Longer inputs are rejected, not truncated.
	MaxNameLen    = 128
	MaxSymptomLen = 256
)

// ───────────────────────────── Storage & Intake ─────────────────────────────

const (
	// DatabasePath is the SQLite file the patient store opens at boot.
	// Created on first run with the schema bootstrap.
	DatabasePath = "hospital.db"

	// ExportPath is where the registry JSON export lands by default.
	ExportPath = "patients_export.json"
)
