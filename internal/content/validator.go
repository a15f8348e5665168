// Package content validates the site's JSON content documents and
// cross-checks references between them.
package content

import (
	"strings"

	"github.com/kwartier-west/kwcheck/internal/domain"
)

// SlugAdvisor abstracts slug canonicalisation and nearest-match lookup.
type SlugAdvisor interface {
	Canonical(slug string) string
	Nearest(target string, candidates []string) (string, bool)
}

// Validator holds the per-document validation rules. The zero value is
// usable: documents carry their default file names and no slug advice is
// given.
type Validator struct {
	// Advisor adds slug hygiene warnings and suggestions when set.
	Advisor SlugAdvisor
	// Names overrides document file names used in locations.
	Names map[domain.DocumentKind]string
}

func (v *Validator) docName(kind domain.DocumentKind) string {
	if name, ok := v.Names[kind]; ok && name != "" {
		return name
	}
	return kind.DefaultFileName()
}

// suggest returns a " Bedoel je ...?" hint for an unresolved slug, or "".
func (v *Validator) suggest(slug string, candidates []string) string {
	if v.Advisor == nil || slug == "" {
		return ""
	}
	near, ok := v.Advisor.Nearest(slug, candidates)
	if !ok {
		return ""
	}
	return ` Bedoel je "` + near + `"?`
}

// checkRoot records a structural error and returns false when the
// document root is not an object. No further checks may run in that case.
func checkRoot(r *domain.Report, doc domain.Value, name string) bool {
	if !doc.IsObject() {
		r.Errorf(domain.FindingStructural, domain.At(name), "moet een object zijn.")
		return false
	}
	if at := doc.Get("updatedAt"); !at.IsNull() && !domain.IsISODateTime(at.Raw()) {
		r.Warnf(domain.FindingFormat, domain.At(name).Key("updatedAt"), "is geen geldige datum/tijd (staat: %q).", at.Text())
	}
	return true
}

// collection returns the named array of a document, recording a
// structural error when it is absent or not an array.
func collection(r *domain.Report, doc domain.Value, key string, loc domain.Location) ([]domain.Value, bool) {
	list, ok := doc.Get(key).List()
	if !ok {
		r.Errorf(domain.FindingStructural, loc, "moet een array zijn.")
		return nil, false
	}
	return list, true
}

// elementObject records an error for a collection element that is not an
// object. Callers continue with the next element.
func elementObject(r *domain.Report, el domain.Value, loc domain.Location) bool {
	if !el.IsObject() {
		r.Errorf(domain.FindingStructural, loc, "is geen object.")
		return false
	}
	return true
}

func requireString(r *domain.Report, v domain.Value, loc domain.Location) (string, bool) {
	s, ok := v.NonEmptyString()
	if !ok {
		r.Errorf(domain.FindingField, loc, "ontbreekt of is geen string.")
	}
	return s, ok
}

func checkEnum(r *domain.Report, value string, allowed []string, loc domain.Location) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	r.Errorf(domain.FindingEnum, loc, "moet one of: %s (staat: %q)", strings.Join(allowed, " | "), value)
	return false
}

// checkURL warns when a present value is not a URL, a site path, or empty.
func checkURL(r *domain.Report, v domain.Value, loc domain.Location) {
	if v.IsNull() || domain.IsURLOrEmpty(v.Raw()) {
		return
	}
	r.Warnf(domain.FindingFormat, loc, "lijkt geen geldige URL (staat: %q).", v.Text())
}

// checkOptionalObject records an error when a present, truthy value is
// not an object. It reports whether the caller should descend.
func checkOptionalObject(r *domain.Report, v domain.Value, loc domain.Location) bool {
	if !v.Truthy() {
		return false
	}
	if !v.IsObject() {
		r.Errorf(domain.FindingStructural, loc, "moet een object zijn als het bestaat.")
		return false
	}
	return true
}

func isLinkURL(v domain.Value) bool {
	s, ok := v.Str()
	if !ok {
		return false
	}
	return domain.IsURLOrEmpty(s) || strings.HasPrefix(strings.ToLower(s), "mailto:")
}

// checkLinks validates a social link list. Lists hold {label|platform, url}
// entries; the object form maps platform names to URLs.
func checkLinks(r *domain.Report, links domain.Value, loc domain.Location) {
	if !links.Truthy() {
		return
	}
	if list, ok := links.List(); ok {
		for j, entry := range list {
			checkLink(r, entry, loc.Index(j))
		}
		return
	}
	if links.IsObject() {
		for _, platform := range links.Keys() {
			if url := links.Get(platform); !isLinkURL(url) {
				r.Warnf(domain.FindingFormat, loc.Key(platform), "lijkt geen geldige URL (staat: %q).", url.Text())
			}
		}
		return
	}
	r.Errorf(domain.FindingStructural, loc, "moet een lijst of object zijn als het bestaat.")
}

func checkLink(r *domain.Report, entry domain.Value, loc domain.Location) {
	if !elementObject(r, entry, loc) {
		return
	}
	url := entry.Get("url")
	switch {
	case !url.Truthy():
		r.Warnf(domain.FindingOptional, loc.Key("url"), "ontbreekt.")
	case !isLinkURL(url):
		r.Warnf(domain.FindingFormat, loc.Key("url"), "lijkt geen geldige URL (staat: %q).", url.Text())
	}
	_, hasLabel := entry.Get("label").NonEmptyString()
	_, hasPlatform := entry.Get("platform").NonEmptyString()
	if !hasLabel && !hasPlatform {
		r.Warnf(domain.FindingOptional, loc.Key("label"), "ontbreekt (geen label of platform).")
	}
}
