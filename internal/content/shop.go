package content

import (
	"github.com/kwartier-west/kwcheck/internal/domain"
)

var (
	ownerTypes   = []string{"label", "artists"}
	shopStatuses = []string{"in_stock", "preorder", "sold_out", "coming_soon"}
	shopSides    = []string{"global", "tekno", "hiphop"}
)

// Shop validates shop.json. Item ids are unique across the whole catalog
// and artist owners are resolved against every side.
func (v *Validator) Shop(r *domain.Report, doc domain.Value, lookup *domain.ArtistLookup) {
	name := v.docName(domain.DocShop)
	if !checkRoot(r, doc, name) {
		return
	}

	loc := domain.At(name).Key("items")
	list, ok := collection(r, doc, "items", loc)
	if !ok {
		return
	}

	ids := make(map[string]struct{})
	for i, item := range list {
		where := loc.Index(i)
		if !elementObject(r, item, where) {
			continue
		}

		if id, ok := requireString(r, item.Get("id"), where.Key("id")); ok {
			if _, dup := ids[id]; dup {
				r.Errorf(domain.FindingUniqueness, where.Key("id"), "%q is dubbel in de catalogus.", id)
			}
			ids[id] = struct{}{}
		}
		requireString(r, item.Get("title"), where.Key("title"))

		// Absent enum fields take the shop page's display defaults.
		ownerType := item.Get("ownerType").StringOr("artists")
		checkEnum(r, ownerType, ownerTypes, where.Key("ownerType"))
		checkEnum(r, item.Get("status").StringOr("coming_soon"), shopStatuses, where.Key("status"))
		checkEnum(r, item.Get("side").StringOr("global"), shopSides, where.Key("side"))

		if ownerType == "artists" {
			v.checkOwner(r, item.Get("artistSlug"), where.Key("artistSlug"), lookup)
		}

		if sizes := item.Get("sizes"); !sizes.IsNull() {
			if _, ok := sizes.List(); !ok {
				r.Errorf(domain.FindingStructural, where.Key("sizes"), "moet een array zijn als het bestaat.")
			}
		}
		checkURL(r, item.Get("url"), where.Key("url"))
		checkURL(r, item.Get("image"), where.Key("image"))

		if price := item.Get("price"); !price.IsNull() {
			if n, ok := price.Number(); !ok || n < 0 {
				r.Warnf(domain.FindingFormat, where.Key("price"), "moet een positief getal zijn (staat: %q).", price.Text())
			}
		}
	}
}

func (v *Validator) checkOwner(r *domain.Report, slug domain.Value, loc domain.Location, lookup *domain.ArtistLookup) {
	s, ok := slug.NonEmptyString()
	if !ok {
		r.Errorf(domain.FindingConditional, loc, "is verplicht bij ownerType %q.", "artists")
		return
	}
	if !lookup.Has(s) {
		r.Warnf(domain.FindingReference, loc, "%q bestaat niet in %s.%s",
			s, v.docName(domain.DocArtists), v.suggest(s, lookup.Slugs()))
	}
}
