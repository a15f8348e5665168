package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/kwartier-west/kwcheck/internal/domain"
)

// doc decodes a JSON literal into a domain.Value.
func doc(t *testing.T, src string) domain.Value {
	t.Helper()
	var raw any
	if err := json.Unmarshal([]byte(src), &raw); err != nil {
		t.Fatalf("decoding test document: %v\n%s", err, src)
	}
	return domain.ValueOf(raw)
}

// fakeLoader serves documents from memory. Names absent from both maps
// are reported missing.
type fakeLoader struct {
	docs  map[string]string
	errs  map[string]error
	calls []string
}

func (f *fakeLoader) Load(_ context.Context, name string) (any, error) {
	f.calls = append(f.calls, name)
	if err, ok := f.errs[name]; ok {
		return nil, &domain.LoadError{Document: name, Err: err}
	}
	src, ok := f.docs[name]
	if !ok {
		return nil, &domain.LoadError{Document: name, Err: fmt.Errorf("%w: %s", domain.ErrDocumentMissing, name)}
	}
	var raw any
	if err := json.Unmarshal([]byte(src), &raw); err != nil {
		return nil, &domain.LoadError{Document: name, Err: err}
	}
	return raw, nil
}

// fakeAdvisor canonicalises by lower-casing and suggests from a fixed table.
type fakeAdvisor struct {
	near map[string]string
}

func (f *fakeAdvisor) Canonical(slug string) string {
	return strings.ToLower(slug)
}

func (f *fakeAdvisor) Nearest(target string, candidates []string) (string, bool) {
	want, ok := f.near[target]
	if !ok {
		return "", false
	}
	for _, c := range candidates {
		if c == want {
			return c, true
		}
	}
	return "", false
}

// lookupOf builds an artist lookup from side/slug pairs.
func lookupOf(pairs ...string) *domain.ArtistLookup {
	l := domain.NewArtistLookup()
	for i := 0; i+1 < len(pairs); i += 2 {
		l.Add(domain.Side(pairs[i]), pairs[i+1])
	}
	return l
}

func assertMessages(t *testing.T, kind string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s count = %d, want %d\ngot:  %q\nwant: %q", kind, len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %q, want %q", kind, i, got[i], want[i])
		}
	}
}
