package content

import (
	"github.com/kwartier-west/kwcheck/internal/domain"
)

// Artists validates artists.json and returns the slug lookup consumed by
// the events and shop validators. A malformed root yields an empty lookup.
func (v *Validator) Artists(r *domain.Report, doc domain.Value) *domain.ArtistLookup {
	lookup := domain.NewArtistLookup()
	name := v.docName(domain.DocArtists)
	if !checkRoot(r, doc, name) {
		return lookup
	}

	firstSide := make(map[string]domain.Side)
	for _, side := range domain.Sides {
		loc := domain.At(name).Key(string(side))
		list, ok := collection(r, doc, string(side), loc)
		if !ok {
			continue
		}

		slugs := make(map[string]struct{})
		for i, a := range list {
			where := loc.Index(i)
			if !elementObject(r, a, where) {
				continue
			}

			slug, hasSlug := requireString(r, a.Get("slug"), where.Key("slug"))
			requireString(r, a.Get("name"), where.Key("name"))
			if _, ok := a.Get("role").NonEmptyString(); !ok {
				r.Warnf(domain.FindingOptional, where.Key("role"), "ontbreekt (mag, maar liefst invullen).")
			}

			if hasSlug {
				v.checkArtistSlug(r, slug, side, where.Key("slug"), slugs, firstSide)
				slugs[slug] = struct{}{}
				if _, seen := firstSide[slug]; !seen {
					firstSide[slug] = side
				}
				lookup.Add(side, slug)
			}

			checkLinks(r, a.Get("links"), where.Key("links"))
			checkBooking(r, a.Get("booking"), where.Key("booking"))
		}
	}
	return lookup
}

func (v *Validator) checkArtistSlug(r *domain.Report, slug string, side domain.Side, loc domain.Location, sideSlugs map[string]struct{}, firstSide map[string]domain.Side) {
	if _, dup := sideSlugs[slug]; dup {
		r.Errorf(domain.FindingUniqueness, loc, "%q is dubbel binnen %q.", slug, side)
	} else if other, ok := firstSide[slug]; ok && other != side {
		r.Warnf(domain.FindingUniqueness, loc, "%q bestaat ook binnen %q.", slug, other)
	}

	if v.Advisor != nil {
		if canonical := v.Advisor.Canonical(slug); canonical != slug {
			r.Warnf(domain.FindingFormat, loc, "%q is geen nette slug (verwacht %q).", slug, canonical)
		}
	}
}

func checkBooking(r *domain.Report, booking domain.Value, loc domain.Location) {
	if !checkOptionalObject(r, booking, loc) {
		return
	}
	types := booking.Get("types")
	if types.IsNull() {
		return
	}
	list, ok := types.List()
	if !ok {
		r.Errorf(domain.FindingStructural, loc.Key("types"), "moet een array zijn als het bestaat.")
		return
	}
	for j, t := range list {
		if _, ok := t.NonEmptyString(); !ok {
			r.Errorf(domain.FindingField, loc.Key("types").Index(j), "is geen string.")
		}
	}
}
