package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/kwartier-west/kwcheck/internal/metrics"
)

// Severity represents the severity level of a validation finding.
type Severity string

const (
	// SeverityError represents an error-level finding. Errors fail the run.
	SeverityError Severity = "error"
	// SeverityWarning represents a warning-level finding.
	SeverityWarning Severity = "warning"
)

// ValidateFinding represents a single finding from a validation run.
type ValidateFinding struct {
	Kind     string   `json:"kind"`
	Severity Severity `json:"severity"`
	Document string   `json:"document"`
	Location string   `json:"location"`
	Message  string   `json:"message"`
}

// ValidateResult holds all findings from a validation run, in the order
// they were recorded.
type ValidateResult struct {
	Findings []ValidateFinding
	// Documents lists the file names that were loaded and validated.
	Documents []string
}

// ValidateRunner defines the interface for running content validation.
type ValidateRunner interface {
	Validate(ctx context.Context) (*ValidateResult, error)
}

// FileWriter writes a complete file.
type FileWriter interface {
	WriteFile(ctx context.Context, path string, data []byte) error
}

// MetricsRecorder exports per-run gauges.
type MetricsRecorder interface {
	Observe(documents []string, findings []metrics.Finding, at time.Time)
	WriteTextfile(path string) error
}

// FindingsDetectedError is returned when validation records errors.
type FindingsDetectedError struct {
	Errors   int
	Warnings int
}

// Error implements the error interface.
func (e *FindingsDetectedError) Error() string {
	return fmt.Sprintf("validation found %d errors, %d warnings", e.Errors, e.Warnings)
}

// ExitCode returns the exit code for failed validation (always 1).
func (e *FindingsDetectedError) ExitCode() int {
	return 1
}

// ExitCoder is implemented by errors that carry a specific process exit code.
type ExitCoder interface {
	ExitCode() int
}

// ExitCodeFromError returns the appropriate exit code for an error.
// nil returns 0, ExitCoder errors return their code, all others return 1.
func ExitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// validateJSONResponse is the JSON output structure for a validation run.
type validateJSONResponse struct {
	Summary struct {
		Errors   int `json:"errors"`
		Warnings int `json:"warnings"`
	} `json:"summary"`
	Errors   []string          `json:"errors"`
	Warnings []string          `json:"warnings"`
	Findings []ValidateFinding `json:"findings"`
}

// splitBySeverity returns the rendered error and warning messages in order.
func splitBySeverity(findings []ValidateFinding) (errs, warns []string) {
	errs, warns = []string{}, []string{}
	for _, f := range findings {
		if f.Severity == SeverityError {
			errs = append(errs, f.Message)
		} else {
			warns = append(warns, f.Message)
		}
	}
	return errs, warns
}

// formatValidateJSON writes the result as JSON to w.
func formatValidateJSON(w io.Writer, result *ValidateResult) {
	out := validateJSONResponse{Findings: result.Findings}
	if out.Findings == nil {
		out.Findings = []ValidateFinding{}
	}
	out.Errors, out.Warnings = splitBySeverity(result.Findings)
	out.Summary.Errors = len(out.Errors)
	out.Summary.Warnings = len(out.Warnings)
	writeJSON(w, out)
}

// formatValidateHuman writes the result as a plain-text report to w.
func formatValidateHuman(w io.Writer, result *ValidateResult) {
	errs, warns := splitBySeverity(result.Findings)

	fmt.Fprintln(w, "— Kwartier West data validation —")
	fmt.Fprintf(w, "Errors:   %d\n", len(errs))
	fmt.Fprintf(w, "Warnings: %d\n", len(warns))
	fmt.Fprintln(w)

	writeSection(w, "ERRORS:", errs)
	writeSection(w, "WARNINGS:", warns)
}

func writeSection(w io.Writer, title string, messages []string) {
	if len(messages) == 0 {
		return
	}
	fmt.Fprintln(w, title)
	for _, m := range messages {
		fmt.Fprintln(w, " - "+m)
	}
	fmt.Fprintln(w)
}

// outputs holds the optional file outputs of a run.
type outputs struct {
	reportFile  string
	metricsFile string
	files       FileWriter
	metrics     MetricsRecorder
	now         func() time.Time
}

// write stores the JSON report and the metrics textfile when configured.
func (o outputs) write(ctx context.Context, result *ValidateResult) error {
	if o.reportFile != "" && o.files != nil {
		var buf bytes.Buffer
		formatValidateJSON(&buf, result)
		if err := o.files.WriteFile(ctx, o.reportFile, buf.Bytes()); err != nil {
			return &ContextError{Op: "write report", Path: o.reportFile, Err: err}
		}
	}

	if o.metricsFile != "" && o.metrics != nil {
		observed := make([]metrics.Finding, len(result.Findings))
		for i, f := range result.Findings {
			observed[i] = metrics.Finding{Document: f.Document, Severity: string(f.Severity)}
		}
		now := time.Now
		if o.now != nil {
			now = o.now
		}
		o.metrics.Observe(result.Documents, observed, now())
		if err := o.metrics.WriteTextfile(o.metricsFile); err != nil {
			return &ContextError{Op: "write metrics", Path: o.metricsFile, Err: err}
		}
	}
	return nil
}

// runValidateAndReport runs the validator, prints the report, writes the
// configured file outputs and returns a FindingsDetectedError when the
// report holds errors. Warnings alone never fail the run.
func runValidateAndReport(cmd *cobra.Command, runner ValidateRunner, jsonOutput bool, out outputs) error {
	result, err := runner.Validate(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput {
		formatValidateJSON(cmd.OutOrStdout(), result)
	} else {
		formatValidateHuman(cmd.OutOrStdout(), result)
	}

	if err := out.write(cmd.Context(), result); err != nil {
		return err
	}

	errs, warns := splitBySeverity(result.Findings)
	if len(errs) > 0 {
		return &FindingsDetectedError{Errors: len(errs), Warnings: len(warns)}
	}
	return nil
}

// NewValidateCmd creates the validate command. It shares the root's
// persistent flags.
func NewValidateCmd(run func(cmd *cobra.Command) error) *cobra.Command {
	return &cobra.Command{
		Use:          "validate",
		Short:        "Validate the content documents",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}
}
