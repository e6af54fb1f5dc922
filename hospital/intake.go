// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: intake.go — JSON batch admission and registry export
// ─────────────────────────────────────────────────────────────────────────────

package hospital

import (
	"os"

	"github.com/sugawarayuuta/sonnet"

	"triage/debug"
)

// Admission is one entry of an intake file: a registration request that
// has not been assigned an ID yet.
type Admission struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Priority int    `json:"priority"`
	Symptom  string `json:"symptom"`
}

// ImportIntake registers every admission in a JSON intake file (an array
// of admission objects) through the normal validation path. Records that
// fail validation are reported and skipped; the rest are admitted.
// Returns how many were admitted. A file that cannot be read or parsed
// admits nobody.
func (s *System) ImportIntake(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var batch []Admission
	if err := sonnet.Unmarshal(data, &batch); err != nil {
		return 0, err
	}

	admitted := 0
	for i := range batch {
		a := &batch[i]
		if _, err := s.Register(a.Name, a.Age, a.Priority, a.Symptom); err != nil {
			debug.DropMessage("intake", "rejected entry "+a.Name+": "+err.Error())
			continue
		}
		admitted++
	}
	return admitted, nil
}

// ExportJSON writes the full registry to path as a JSON array in
// admission order.
func (s *System) ExportJSON(path string) error {
	data, err := sonnet.Marshal(s.Patients())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
