package content

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kwartier-west/kwcheck/internal/domain"
)

// DocumentLoader abstracts reading and decoding one content document.
// Implementations return an error wrapping domain.ErrDocumentMissing when
// the document does not exist.
type DocumentLoader interface {
	Load(ctx context.Context, fileName string) (any, error)
}

// ValidateResult holds the outcome of one validation run.
type ValidateResult struct {
	Report    *domain.Report
	Validated []domain.DocumentKind
	Skipped   []domain.DocumentKind
}

// Service loads the content documents and validates them in dependency
// order. A Service keeps no state between runs.
type Service struct {
	loader    DocumentLoader
	validator Validator
	optional  map[domain.DocumentKind]bool
}

// Option configures a Service.
type Option func(*Service)

// WithSlugAdvisor enables slug hygiene warnings and suggestions.
func WithSlugAdvisor(a SlugAdvisor) Option {
	return func(s *Service) {
		s.validator.Advisor = a
	}
}

// WithDocumentNames overrides document file names.
func WithDocumentNames(names map[domain.DocumentKind]string) Option {
	return func(s *Service) {
		s.validator.Names = names
	}
}

// WithOptional marks documents whose absence is not reported.
func WithOptional(kinds ...domain.DocumentKind) Option {
	return func(s *Service) {
		for _, k := range kinds {
			s.optional[k] = true
		}
	}
}

// NewService creates a Service reading documents through loader.
func NewService(loader DocumentLoader, opts ...Option) *Service {
	s := &Service{
		loader:   loader,
		optional: make(map[domain.DocumentKind]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate runs one validation over all documents. Load failures are
// recorded in the report; only context cancellation is returned as an error.
func (s *Service) Validate(ctx context.Context) (*ValidateResult, error) {
	report := domain.NewReport()
	result := &ValidateResult{Report: report}

	docs := make(map[domain.DocumentKind]domain.Value, len(domain.DocumentKinds))
	for _, kind := range domain.DocumentKinds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, ok, skipped := s.load(ctx, report, kind)
		switch {
		case ok:
			docs[kind] = doc
		case skipped:
			result.Skipped = append(result.Skipped, kind)
		}
	}

	// Artists go first: events and shop resolve artist slugs.
	lookup := domain.NewArtistLookup()
	for _, kind := range domain.DocumentKinds {
		doc, ok := docs[kind]
		if !ok {
			continue
		}
		switch kind {
		case domain.DocArtists:
			lookup = s.validator.Artists(report, doc)
		case domain.DocEvents:
			s.validator.Events(report, doc, lookup)
		case domain.DocPartners:
			s.validator.Partners(report, doc)
		case domain.DocShop:
			s.validator.Shop(report, doc, lookup)
		case domain.DocIntegrations:
			s.validator.Integrations(report, doc)
		}
		result.Validated = append(result.Validated, kind)
	}

	slog.Debug("validation completed",
		"validated", len(result.Validated),
		"artists", lookup.Len(),
		"errors", report.ErrorCount(),
		"warnings", report.WarningCount())

	return result, nil
}

// load reads one document. Failures become a single load error; an absent
// optional document is skipped silently.
func (s *Service) load(ctx context.Context, report *domain.Report, kind domain.DocumentKind) (doc domain.Value, ok, skipped bool) {
	name := s.validator.docName(kind)
	raw, err := s.loader.Load(ctx, name)
	if err == nil {
		slog.Debug("document loaded", "document", name)
		return domain.ValueOf(raw), true, false
	}

	if errors.Is(err, domain.ErrDocumentMissing) && s.optional[kind] {
		slog.Debug("optional document absent, skipping", "document", name)
		return domain.Value{}, false, true
	}

	cause := err
	var loadErr *domain.LoadError
	if errors.As(err, &loadErr) {
		cause = loadErr.Err
	}
	report.Errorf(domain.FindingLoad, domain.At(name), "kon niet worden geladen: %v", cause)
	slog.Debug("document failed to load", "document", name, "error", err)
	return domain.Value{}, false, false
}

// DocumentName returns the file name used for kind.
func (s *Service) DocumentName(kind domain.DocumentKind) string {
	return s.validator.docName(kind)
}
