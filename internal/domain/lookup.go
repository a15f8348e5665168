package domain

import "sort"

// ArtistLookup indexes artist slugs globally and per side. It is built by
// the artist validator and consumed by validators that reference artists.
type ArtistLookup struct {
	all    map[string]struct{}
	bySide map[Side]map[string]struct{}
}

// NewArtistLookup returns an empty lookup.
func NewArtistLookup() *ArtistLookup {
	return &ArtistLookup{
		all:    make(map[string]struct{}),
		bySide: make(map[Side]map[string]struct{}),
	}
}

// Add registers a slug for a side.
func (l *ArtistLookup) Add(side Side, slug string) {
	l.all[slug] = struct{}{}
	set, ok := l.bySide[side]
	if !ok {
		set = make(map[string]struct{})
		l.bySide[side] = set
	}
	set[slug] = struct{}{}
}

// Has reports whether the slug exists on any side.
func (l *ArtistLookup) Has(slug string) bool {
	if l == nil {
		return false
	}
	_, ok := l.all[slug]
	return ok
}

// HasInSide reports whether the slug exists on the given side.
func (l *ArtistLookup) HasInSide(side Side, slug string) bool {
	if l == nil {
		return false
	}
	_, ok := l.bySide[side][slug]
	return ok
}

// Slugs returns every known slug, sorted.
func (l *ArtistLookup) Slugs() []string {
	if l == nil {
		return nil
	}
	out := make([]string, 0, len(l.all))
	for s := range l.all {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// SlugsInSide returns the slugs of one side, sorted.
func (l *ArtistLookup) SlugsInSide(side Side) []string {
	if l == nil {
		return nil
	}
	out := make([]string, 0, len(l.bySide[side]))
	for s := range l.bySide[side] {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of distinct slugs.
func (l *ArtistLookup) Len() int {
	if l == nil {
		return 0
	}
	return len(l.all)
}
