// Package domain holds the content model and validation report types.
// It depends on the standard library only.
package domain

// FindingSeverity indicates how severe a finding is.
type FindingSeverity string

const (
	// SeverityError indicates a finding that blocks publishing.
	SeverityError FindingSeverity = "error"
	// SeverityWarning indicates a finding that should be reviewed.
	SeverityWarning FindingSeverity = "warning"
)

// FindingKind classifies what rule produced a finding.
type FindingKind string

// Finding kinds.
const (
	// FindingStructural: document root or a named collection has the wrong shape.
	FindingStructural FindingKind = "structural"
	// FindingField: a required field is missing, empty, or of the wrong type.
	FindingField FindingKind = "field"
	// FindingUniqueness: a key collides within its uniqueness scope.
	FindingUniqueness FindingKind = "uniqueness"
	// FindingEnum: a value lies outside its allowed set.
	FindingEnum FindingKind = "enum"
	// FindingFormat: a value has the right type but a malformed shape.
	FindingFormat FindingKind = "format"
	// FindingReference: a cross-document reference does not resolve.
	FindingReference FindingKind = "reference"
	// FindingConditional: a field required by a sibling's value is absent.
	FindingConditional FindingKind = "conditional"
	// FindingOptional: a recommended descriptive field is absent.
	FindingOptional FindingKind = "optional"
	// FindingLoad: the document could not be read or decoded.
	FindingLoad FindingKind = "load"
)

// Finding is a single report entry.
type Finding struct {
	Kind     FindingKind
	Severity FindingSeverity
	Location Location
	Text     string
}

// Message renders the finding as "<location> <text>".
func (f Finding) Message() string {
	return f.Location.String() + " " + f.Text
}
