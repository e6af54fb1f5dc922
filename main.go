// ════════════════════════════════════════════════════════════════════════════════════════════════
// Hospital Triage System - Main Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Hospital Triage System
// Component: Main Entry Point & Console Orchestration
//
// Description:
//   Phased startup followed by an interactive console. Bootstrap restores the
//   patient flow from the SQLite store, then a menu loop drives every
//   operation through the hospital façade. Exit flushes the registry to JSON
//   and closes the store.
//
// Architecture:
//   - Phase 0: Open the patient store (unrecoverable failure panics)
//   - Phase 1: Rebuild registry, triage queue, rooms, and history from rows
//   - Phase 2: Interactive menu loop on stdin
//   - Phase 3: Flush registry export and release the store
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"bufio"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"triage/constants"
	"triage/debug"
	"triage/hospital"
	"triage/utils"
)

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// MAIN ORCHESTRATION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

func main() {
	// PHASE 0: Persistence bootstrap
	debug.DropMessage("INIT", "Opening patient store "+constants.DatabasePath)
	store := openStore(constants.DatabasePath)

	// PHASE 1: Rebuild the in-memory flow from persisted rows
	sys := hospital.New()
	sys.AttachStore(store)
	loaded, err := sys.LoadFromStore()
	if err != nil {
		panic("Failed to restore patients: " + err.Error())
	}
	debug.DropMessage("LOADED", utils.Itoa(int64(loaded))+" patients restored")

	setupSignalHandling(store)
	debug.DropMessage("READY", "Console online")

	// PHASE 2: Interactive menu loop until exit or closed stdin
	runConsole(sys, os.Stdin, os.Stdout)

	// PHASE 3: Flush and release
	if err := sys.ExportJSON(constants.ExportPath); err != nil {
		debug.DropError("EXPORT", err)
	} else {
		debug.DropMessage("EXPORT", "Registry written to "+constants.ExportPath)
	}
	if err := store.Close(); err != nil {
		debug.DropError("STORE", err)
	}
	debug.DropMessage("EXIT", "Shutdown complete")
}

// openStore opens the SQLite store or aborts startup; the console is
// useless without persistence.
func openStore(path string) *hospital.Store {
	st, err := hospital.OpenStore(path)
	if err != nil {
		panic("Failed to open patient store " + path + ": " + err.Error())
	}
	return st
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CONSOLE LOOP
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// runConsole drives the menu until the operator exits or the input closes.
// All mutations go through the hospital façade.
func runConsole(sys *hospital.System, r io.Reader, w io.Writer) {
	in := bufio.NewScanner(r)
	out := bufio.NewWriter(w)
	defer out.Flush()

	for {
		printMenu(out)
		choice, ok := prompt(in, out, "Select option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			registerPatient(sys, in, out)
		case "2":
			attendNext(sys, out)
		case "3":
			freeRoom(sys, out)
		case "4":
			systemStatus(sys, out)
		case "5":
			patientDatabase(sys, out)
		case "6":
			searchPatient(sys, in, out)
		case "7":
			importIntake(sys, in, out)
		case "0":
			return
		default:
			writeLine(out, "Unknown option: "+choice)
		}
	}
}

func printMenu(out *bufio.Writer) {
	writeLine(out, "")
	writeLine(out, "========= HOSPITAL TRIAGE =========")
	writeLine(out, "1. Register patient     5. Patient database")
	writeLine(out, "2. Attend next patient  6. Search patient")
	writeLine(out, "3. Free consultation    7. Import intake file")
	writeLine(out, "4. System status        0. Exit")
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// MENU HANDLERS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

func registerPatient(sys *hospital.System, in *bufio.Scanner, out *bufio.Writer) {
	name, ok := prompt(in, out, "Name: ")
	if !ok {
		return
	}
	age, ok := promptInt(in, out, "Age: ")
	if !ok {
		writeLine(out, "Invalid age")
		return
	}
	priority, ok := promptInt(in, out,
		"Priority (1=critical .. "+utils.Itoa(int64(constants.TriageLevels))+"=routine): ")
	if !ok {
		writeLine(out, "Invalid priority")
		return
	}
	symptom, ok := prompt(in, out, "Symptom: ")
	if !ok {
		return
	}

	p, err := sys.Register(name, int(age), int(priority), symptom)
	if err != nil {
		writeLine(out, "Cannot register: "+err.Error())
		return
	}
	out.WriteString("Registered ")
	out.Write(p.AppendLine(nil))
	out.WriteByte('\n')
}

func attendNext(sys *hospital.System, out *bufio.Writer) {
	p, err := sys.AttendNext()
	if err != nil {
		writeLine(out, err.Error())
		return
	}
	st, _ := sys.StatusOf(p.ID)
	out.WriteString("Now attending (room " + utils.Itoa(int64(st.Room)) + "): ")
	out.Write(p.AppendLine(nil))
	out.WriteByte('\n')
}

func freeRoom(sys *hospital.System, out *bufio.Writer) {
	p, err := sys.FreeRoom()
	if err != nil {
		writeLine(out, err.Error())
		return
	}
	out.WriteString("Discharged: ")
	out.Write(p.AppendLine(nil))
	out.WriteByte('\n')
}

func systemStatus(sys *hospital.System, out *bufio.Writer) {
	ov := sys.Snapshot()
	writeLine(out, "Registered patients: "+utils.Itoa(int64(ov.Registered)))

	line := "Waiting: " + utils.Itoa(int64(ov.Waiting))
	for i, n := range ov.PerLevel {
		if i == 0 {
			line += " (level "
		} else {
			line += ", level "
		}
		line += utils.Itoa(int64(i+1)) + ": " + utils.Itoa(int64(n))
	}
	if len(ov.PerLevel) > 0 {
		line += ")"
	}
	writeLine(out, line)

	writeLine(out, "Rooms occupied: "+utils.Itoa(int64(ov.InRooms))+"/"+utils.Itoa(int64(ov.RoomCap)))
	for i, p := range ov.Rooms {
		out.WriteString("  Room " + utils.Itoa(int64(i+1)) + ": ")
		out.Write(p.AppendLine(nil))
		out.WriteByte('\n')
	}

	writeLine(out, "Completed consultations: "+utils.Itoa(int64(ov.Completed)))
	if ov.LastFreed != nil {
		out.WriteString("Last discharged: ")
		out.Write(ov.LastFreed.AppendLine(nil))
		out.WriteByte('\n')
	}
}

func patientDatabase(sys *hospital.System, out *bufio.Writer) {
	all := sys.Patients()
	writeLine(out, "Patient database ("+utils.Itoa(int64(len(all)))+" records):")
	for _, p := range all {
		st, _ := sys.StatusOf(p.ID)
		out.Write(p.AppendLine(nil))
		out.WriteString(" [" + describeState(st) + "]")
		out.WriteByte('\n')
	}
	writeLine(out, "History dump: "+string(sys.DumpHistory(nil)))
}

func searchPatient(sys *hospital.System, in *bufio.Scanner, out *bufio.Writer) {
	id, ok := promptInt(in, out, "Patient ID: ")
	if !ok {
		writeLine(out, "Invalid ID")
		return
	}
	st, err := sys.StatusOf(id)
	if err != nil {
		writeLine(out, err.Error())
		return
	}
	out.Write(st.Patient.AppendLine(nil))
	out.WriteByte('\n')
	writeLine(out, "Status: "+describeState(st))
}

func importIntake(sys *hospital.System, in *bufio.Scanner, out *bufio.Writer) {
	path, ok := prompt(in, out, "Intake file path: ")
	if !ok || path == "" {
		writeLine(out, "No path given")
		return
	}
	n, err := sys.ImportIntake(path)
	if err != nil {
		writeLine(out, "Import failed: "+err.Error())
		return
	}
	writeLine(out, "Admitted "+utils.Itoa(int64(n))+" patients")
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CONSOLE PRIMITIVES
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// prompt writes a label, flushes, and reads one trimmed input line. The
// second return is false once the input closes.
func prompt(in *bufio.Scanner, out *bufio.Writer, label string) (string, bool) {
	out.WriteString(label)
	out.Flush()
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

func promptInt(in *bufio.Scanner, out *bufio.Writer, label string) (int64, bool) {
	s, ok := prompt(in, out, label)
	if !ok {
		return 0, false
	}
	return utils.ParseInt([]byte(s))
}

func writeLine(out *bufio.Writer, s string) {
	out.WriteString(s)
	out.WriteByte('\n')
}

func describeState(st hospital.Status) string {
	if st.State == hospital.StateInRoom {
		return hospital.StateName(st.State) + ", room " + utils.Itoa(int64(st.Room))
	}
	return hospital.StateName(st.State)
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SYSTEM LIFECYCLE MANAGEMENT
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// setupSignalHandling closes the store on interrupt so no row is left
// behind an open handle.
func setupSignalHandling(store *hospital.Store) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		debug.DropMessage("SIGNAL", "Interrupt received, closing store")
		if err := store.Close(); err != nil {
			debug.DropError("SIGNAL", err)
		}
		os.Exit(0)
	}()
}
