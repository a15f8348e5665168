package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/kwartier-west/kwcheck/internal/config"
	"github.com/kwartier-west/kwcheck/internal/content"
	"github.com/kwartier-west/kwcheck/internal/domain"
	"github.com/kwartier-west/kwcheck/internal/fs"
)

var errNotDirectory = errors.New("not a directory")

// contentValidator abstracts the content.Service methods used by adapters.
type contentValidator interface {
	Validate(ctx context.Context) (*content.ValidateResult, error)
	DocumentName(kind domain.DocumentKind) string
}

// NewServiceRunner wires the content service to the filesystem according
// to cfg.
func NewServiceRunner(cfg *config.Config) (ValidateRunner, error) {
	info, err := os.Stat(cfg.ContentDir)
	if err != nil {
		return nil, &ContextError{Op: "open content directory", Path: cfg.ContentDir, Err: err}
	}
	if !info.IsDir() {
		return nil, &ContextError{Op: "open content directory", Path: cfg.ContentDir, Err: errNotDirectory}
	}

	opts := []content.Option{
		content.WithDocumentNames(cfg.DocumentNames()),
		content.WithOptional(cfg.OptionalKinds()...),
	}
	if cfg.Suggestions {
		opts = append(opts, content.WithSlugAdvisor(fs.SlugAdapter{}))
	}

	svc := content.NewService(&fs.OSLoader{Root: cfg.ContentDir}, opts...)
	return &validateAdapter{svc: svc}, nil
}

// --- validateAdapter ---

type validateAdapter struct {
	svc contentValidator
}

func (a *validateAdapter) Validate(ctx context.Context) (*ValidateResult, error) {
	svcResult, err := a.svc.Validate(ctx)
	if err != nil {
		return nil, err
	}

	all := svcResult.Report.Findings()
	findings := make([]ValidateFinding, len(all))
	for i, f := range all {
		findings[i] = convertFinding(f)
	}

	documents := make([]string, 0, len(svcResult.Validated))
	for _, kind := range svcResult.Validated {
		documents = append(documents, a.svc.DocumentName(kind))
	}
	return &ValidateResult{Findings: findings, Documents: documents}, nil
}

// convertFinding converts a domain.Finding to a cmd.ValidateFinding.
func convertFinding(f domain.Finding) ValidateFinding {
	return ValidateFinding{
		Kind:     string(f.Kind),
		Severity: Severity(f.Severity),
		Document: f.Location.Document,
		Location: f.Location.Path,
		Message:  f.Message(),
	}
}
