// Package fs provides filesystem adapters that implement content service interfaces.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kwartier-west/kwcheck/internal/domain"
	"github.com/kwartier-west/kwcheck/internal/lock"
	"github.com/kwartier-west/kwcheck/internal/slug"
)

var utf8BOM = []byte("\uFEFF")

// OSLoader implements content.DocumentLoader by reading JSON files below Root.
type OSLoader struct {
	Root string
}

// Load reads and decodes one document. A missing file yields an error
// wrapping domain.ErrDocumentMissing.
func (l *OSLoader) Load(ctx context.Context, fileName string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(l.Root, fileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.LoadError{
				Document: fileName,
				Err:      fmt.Errorf("%w: %s", domain.ErrDocumentMissing, fileName),
			}
		}
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = fmt.Errorf("reading %s: %w", fileName, pathErr.Err)
		}
		return nil, &domain.LoadError{Document: fileName, Err: err}
	}

	doc, err := decode(data)
	if err != nil {
		return nil, &domain.LoadError{Document: fileName, Err: fmt.Errorf("parsing %s: %w", fileName, err)}
	}
	return doc, nil
}

// decode parses a single JSON value. A leading byte order mark is ignored
// and trailing content after the value is rejected.
func decode(data []byte) (any, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	dec := json.NewDecoder(bytes.NewReader(data))
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected content after JSON value")
	}
	return v, nil
}

// ReportWriter writes report files atomically while holding an advisory
// lock next to the target.
type ReportWriter struct{}

// WriteFile replaces path with data. Parent directories are created as needed.
func (ReportWriter) WriteFile(ctx context.Context, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	return lock.ForFile(path).Do(ctx, func() error {
		tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
		if err != nil {
			return fmt.Errorf("creating temp file: %w", err)
		}
		defer os.Remove(tmp.Name())

		if _, err := tmp.Write(data); err != nil {
			tmp.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if err := tmp.Close(); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if err := os.Chmod(tmp.Name(), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		return os.Rename(tmp.Name(), path)
	})
}

// SlugAdapter implements content.SlugAdvisor using the slug package.
type SlugAdapter struct{}

// Canonical returns the normalized form of s.
func (SlugAdapter) Canonical(s string) string { return slug.Slug(s) }

// Nearest returns the closest candidate to target.
func (SlugAdapter) Nearest(target string, candidates []string) (string, bool) {
	return slug.Nearest(target, candidates)
}
