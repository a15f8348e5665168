package content

import (
	"github.com/kwartier-west/kwcheck/internal/domain"
)

// Partners validates partners.json.
func (v *Validator) Partners(r *domain.Report, doc domain.Value) {
	name := v.docName(domain.DocPartners)
	if !checkRoot(r, doc, name) {
		return
	}

	loc := domain.At(name).Key("partners")
	list, ok := collection(r, doc, "partners", loc)
	if !ok {
		return
	}
	for i, p := range list {
		where := loc.Index(i)
		if !elementObject(r, p, where) {
			continue
		}
		requireString(r, p.Get("name"), where.Key("name"))
		checkURL(r, p.Get("url"), where.Key("url"))
		checkURL(r, p.Get("logo"), where.Key("logo"))
		checkLinks(r, p.Get("links"), where.Key("links"))
	}
}
