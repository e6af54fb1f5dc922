// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: store.go — SQLite persistence for the patient flow
//
// One table, one row per patient. Rows carry the flow state and a SHA3-256
// fingerprint of the canonical record line; a mismatch on load means the
// row was edited outside the system and is reported, not trusted silently.
// ─────────────────────────────────────────────────────────────────────────────

package hospital

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"triage/debug"
	"triage/patient"
	"triage/utils"
)

// Store persists patient rows in a SQLite database.
type Store struct {
	db *sql.DB
}

// Record is one persisted row: the patient plus their flow state.
type Record struct {
	Patient patient.Patient
	State   State
}

const storeSchema = `
CREATE TABLE IF NOT EXISTS patients (
	id          INTEGER PRIMARY KEY,
	name        TEXT    NOT NULL,
	age         INTEGER NOT NULL,
	priority    INTEGER NOT NULL,
	symptom     TEXT    NOT NULL,
	status      INTEGER NOT NULL,
	fingerprint TEXT    NOT NULL
)`

// OpenStore opens (creating if needed) the database at path and ensures
// the schema exists.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (st *Store) Close() error { return st.db.Close() }

// SavePatient inserts a new patient row in the given state.
func (st *Store) SavePatient(p *patient.Patient, state State) error {
	_, err := st.db.Exec(
		"INSERT INTO patients (id, name, age, priority, symptom, status, fingerprint) VALUES (?, ?, ?, ?, ?, ?, ?)",
		p.ID, p.Name, p.Age, p.Priority, p.Symptom, int(state), p.FingerprintHex(),
	)
	return err
}

// UpdateStatus records a flow state change for an existing row.
func (st *Store) UpdateStatus(id int64, state State) error {
	_, err := st.db.Exec("UPDATE patients SET status = ? WHERE id = ?", int(state), id)
	return err
}

// LoadAll reads every row in ID order. Row fingerprints are re-computed
// and compared against the stored hex; mismatches are reported through
// the diagnostics channel but the row still loads, so the operator sees
// the tampering instead of losing the record.
func (st *Store) LoadAll() ([]Record, error) {
	var total int
	if err := st.db.QueryRow("SELECT COUNT(*) FROM patients").Scan(&total); err != nil {
		return nil, err
	}
	out := make([]Record, 0, total)

	rows, err := st.db.Query(
		"SELECT id, name, age, priority, symptom, status, fingerprint FROM patients ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rec    Record
			status int
			fp     string
		)
		if err := rows.Scan(
			&rec.Patient.ID, &rec.Patient.Name, &rec.Patient.Age,
			&rec.Patient.Priority, &rec.Patient.Symptom, &status, &fp,
		); err != nil {
			return nil, err
		}
		rec.State = State(status)
		if got := rec.Patient.FingerprintHex(); got != fp {
			debug.DropMessage("store", "fingerprint mismatch for patient "+utils.Itoa(rec.Patient.ID))
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// AttachStore routes subsequent admissions and status changes to st.
func (s *System) AttachStore(st *Store) { s.store = st }

// LoadFromStore replays persisted rows into an empty system and returns
// how many were loaded. Waiting patients rejoin triage in ID order,
// in-room patients reoccupy rooms front to back, completed ones rebuild
// the history with the highest ID on top (discharge order is not
// persisted; ID order stands in). The ID counter resumes past the
// largest loaded ID.
func (s *System) LoadFromStore() (int, error) {
	if s.store == nil {
		return 0, ErrNoStore
	}
	if !s.registry.Empty() {
		return 0, ErrNotPristine
	}
	recs, err := s.store.LoadAll()
	if err != nil {
		return 0, err
	}
	for i := range recs {
		p := &recs[i].Patient
		s.registry.Append(p)
		s.index.Put(uint32(p.ID), uint32(s.registry.Len()-1))
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
		switch recs[i].State {
		case StateWaiting:
			if err := s.triage.Add(p, p.Priority); err != nil {
				debug.DropError("hospital", err) // corrupt priority: keep registered only
			}
		case StateInRoom:
			if err := s.rooms.Enqueue(p); err != nil {
				// More in-room rows than rooms exist. Send the spill back
				// to triage rather than dropping anyone.
				if err := s.triage.Add(p, p.Priority); err != nil {
					debug.DropError("hospital", err)
				}
			}
		case StateCompleted:
			s.history.Add(p)
		}
	}
	return len(recs), nil
}
