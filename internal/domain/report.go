package domain

import "fmt"

// Report accumulates findings for one validation run. It keeps every
// entry in insertion order and never deduplicates. A Report is not safe
// for concurrent use; each run owns its own instance.
type Report struct {
	findings []Finding
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{}
}

// Add appends a finding.
func (r *Report) Add(f Finding) {
	r.findings = append(r.findings, f)
}

// Errorf records an error-level finding.
func (r *Report) Errorf(kind FindingKind, loc Location, format string, args ...any) {
	r.Add(Finding{Kind: kind, Severity: SeverityError, Location: loc, Text: fmt.Sprintf(format, args...)})
}

// Warnf records a warning-level finding.
func (r *Report) Warnf(kind FindingKind, loc Location, format string, args ...any) {
	r.Add(Finding{Kind: kind, Severity: SeverityWarning, Location: loc, Text: fmt.Sprintf(format, args...)})
}

// Findings returns all findings in the order they were recorded.
func (r *Report) Findings() []Finding {
	out := make([]Finding, len(r.findings))
	copy(out, r.findings)
	return out
}

// Errors returns the rendered error messages in order.
func (r *Report) Errors() []string {
	return r.messages(SeverityError)
}

// Warnings returns the rendered warning messages in order.
func (r *Report) Warnings() []string {
	return r.messages(SeverityWarning)
}

// ErrorCount returns the number of error-level findings.
func (r *Report) ErrorCount() int {
	return r.count(SeverityError)
}

// WarningCount returns the number of warning-level findings.
func (r *Report) WarningCount() int {
	return r.count(SeverityWarning)
}

// OK reports whether no errors were recorded. Warnings do not count.
func (r *Report) OK() bool {
	return r.ErrorCount() == 0
}

func (r *Report) messages(sev FindingSeverity) []string {
	var out []string
	for _, f := range r.findings {
		if f.Severity == sev {
			out = append(out, f.Message())
		}
	}
	return out
}

func (r *Report) count(sev FindingSeverity) int {
	n := 0
	for _, f := range r.findings {
		if f.Severity == sev {
			n++
		}
	}
	return n
}
