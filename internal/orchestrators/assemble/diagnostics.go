package assemble

import "github.com/sawakaze/skillsheet/internal/reports"

// Diagnostics accumulates run-wide warnings and the familiar health audit
// trail. Warnings are deduplicated in first-seen order so one broken
// template does not flood the report once per hero.
type Diagnostics struct {
	warnings    []string
	seen        map[string]bool
	familiarLog []reports.FamiliarLogEntry
}

func NewDiagnostics() *Diagnostics {
	return &Diagnostics{seen: make(map[string]bool)}
}

// Warn records a warning once. Empty strings are ignored.
func (d *Diagnostics) Warn(msg string) {
	if msg == "" || d.seen[msg] {
		return
	}
	d.seen[msg] = true
	d.warnings = append(d.warnings, msg)
}

// Warnings returns the recorded warnings in first-seen order.
func (d *Diagnostics) Warnings() []string {
	return d.warnings
}

// LogFamiliar appends one familiar audit entry.
func (d *Diagnostics) LogFamiliar(entry reports.FamiliarLogEntry) {
	d.familiarLog = append(d.familiarLog, entry)
}

// FamiliarLog returns the audit entries in append order.
func (d *Diagnostics) FamiliarLog() []reports.FamiliarLogEntry {
	return d.familiarLog
}
