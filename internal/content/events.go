package content

import (
	"github.com/kwartier-west/kwcheck/internal/domain"
)

var ticketModes = []string{"external", "internal", "tba"}

// Events validates events.json. Lineup slugs are resolved against the
// artists of the event's own side.
func (v *Validator) Events(r *domain.Report, doc domain.Value, lookup *domain.ArtistLookup) {
	name := v.docName(domain.DocEvents)
	if !checkRoot(r, doc, name) {
		return
	}

	for _, side := range domain.Sides {
		loc := domain.At(name).Key(string(side))
		list, ok := collection(r, doc, string(side), loc)
		if !ok {
			continue
		}

		ids := make(map[string]struct{})
		for i, e := range list {
			where := loc.Index(i)
			if !elementObject(r, e, where) {
				continue
			}

			if id, ok := requireString(r, e.Get("id"), where.Key("id")); ok {
				if _, dup := ids[id]; dup {
					r.Errorf(domain.FindingUniqueness, where.Key("id"), "%q is dubbel binnen %q.", id, side)
				}
				ids[id] = struct{}{}
			}

			requireString(r, e.Get("title"), where.Key("title"))
			if !domain.IsISODate(e.Get("date").Raw()) {
				r.Errorf(domain.FindingField, where.Key("date"), "moet YYYY-MM-DD zijn.")
			}
			if t := e.Get("time"); t.Truthy() && !domain.IsTimeOfDay(t.Raw()) {
				r.Warnf(domain.FindingFormat, where.Key("time"), "lijkt niet HH:MM (staat: %q)", t.Text())
			}

			checkTickets(r, e.Get("tickets"), where.Key("tickets"))
			v.checkLineup(r, e.Get("lineup"), where.Key("lineup"), side, lookup)

			if src := e.Get("source"); checkOptionalObject(r, src, where.Key("source")) {
				checkURL(r, src.Get("url"), where.Key("source").Key("url"))
			}
		}
	}
}

// checkTickets applies the ticket rules. An absent mode means "tba".
func checkTickets(r *domain.Report, tickets domain.Value, loc domain.Location) {
	if !tickets.IsNull() && !tickets.IsObject() {
		r.Errorf(domain.FindingStructural, loc, "moet een object zijn als het bestaat.")
		return
	}

	mode := tickets.Get("mode").StringOr("tba")
	checkEnum(r, mode, ticketModes, loc.Key("mode"))

	url := tickets.Get("url")
	if mode == "external" && !url.Truthy() {
		r.Warnf(domain.FindingConditional, loc.Key("url"), "is leeg terwijl tickets.mode=external.")
		return
	}
	if url.Truthy() {
		checkURL(r, url, loc.Key("url"))
	}
}

func (v *Validator) checkLineup(r *domain.Report, lineup domain.Value, loc domain.Location, side domain.Side, lookup *domain.ArtistLookup) {
	if !lineup.Truthy() {
		return
	}
	list, ok := lineup.List()
	if !ok {
		r.Errorf(domain.FindingStructural, loc, "moet een array zijn als het bestaat.")
		return
	}

	artistsDoc := v.docName(domain.DocArtists)
	for j, a := range list {
		where := loc.Index(j)
		if !elementObject(r, a, where) {
			continue
		}
		slug := a.Get("slug")
		if !slug.Truthy() {
			r.Warnf(domain.FindingOptional, where.Key("slug"), "ontbreekt (handig voor doorklik).")
			continue
		}
		s := slug.Text()
		if !lookup.HasInSide(side, s) {
			r.Warnf(domain.FindingReference, where.Key("slug"), "%q bestaat niet in %s (%s).%s",
				s, artistsDoc, side, v.suggest(s, lookup.SlugsInSide(side)))
		}
	}
}
