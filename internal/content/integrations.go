package content

import (
	"strings"

	"github.com/kwartier-west/kwcheck/internal/domain"
)

// Integration endpoint keys in integrations.json.
const (
	endpointEventSync      = "eventSync"
	endpointBookingWebhook = "bookingWebhook"
	endpointShopAPI        = "shopApi"
)

var (
	integrationEndpoints = []string{endpointEventSync, endpointBookingWebhook, endpointShopAPI}
	httpMethods          = []string{"GET", "POST"}
)

// Integrations validates integrations.json. Every endpoint block is
// optional; an absent block means the integration is disabled.
func (v *Validator) Integrations(r *domain.Report, doc domain.Value) {
	name := v.docName(domain.DocIntegrations)
	if !checkRoot(r, doc, name) {
		return
	}

	for _, key := range integrationEndpoints {
		cfg := doc.Get(key)
		loc := domain.At(name).Key(key)
		if cfg.IsNull() {
			continue
		}
		if !cfg.IsObject() {
			r.Errorf(domain.FindingStructural, loc, "moet een object zijn.")
			continue
		}
		checkEndpoint(r, cfg, loc)
		if key == endpointBookingWebhook {
			checkWebhookAuth(r, cfg, loc)
		}
	}
}

func checkEndpoint(r *domain.Report, cfg domain.Value, loc domain.Location) {
	enabled := false
	if e := cfg.Get("enabled"); !e.IsNull() {
		b, ok := e.Bool()
		if !ok {
			r.Errorf(domain.FindingField, loc.Key("enabled"), "moet true of false zijn (staat: %q).", e.Text())
		}
		enabled = b
	}

	endpoint := cfg.Get("endpoint")
	if !endpoint.IsNull() {
		if s, ok := endpoint.Str(); !ok || !isEndpoint(s) {
			r.Warnf(domain.FindingFormat, loc.Key("endpoint"), "lijkt geen geldige URL (staat: %q).", endpoint.Text())
		}
	}
	if enabled && !endpoint.Truthy() {
		r.Warnf(domain.FindingConditional, loc.Key("endpoint"), "is leeg terwijl enabled=true.")
	}

	if m := cfg.Get("method"); !m.IsNull() {
		checkEnum(r, m.StringOr(""), httpMethods, loc.Key("method"))
	}

	if t := cfg.Get("timeoutMs"); !t.IsNull() {
		if n, ok := t.Number(); !ok || n <= 0 {
			r.Errorf(domain.FindingField, loc.Key("timeoutMs"), "moet een positief getal zijn (staat: %q).", t.Text())
		}
	}
}

func checkWebhookAuth(r *domain.Report, cfg domain.Value, loc domain.Location) {
	auth := ""
	if a := cfg.Get("auth"); !a.IsNull() {
		s, ok := a.Str()
		if !ok {
			r.Errorf(domain.FindingField, loc.Key("auth"), "moet een string zijn.")
		}
		auth = s
	}
	if strings.EqualFold(strings.TrimSpace(auth), "bearer-token") {
		if _, ok := cfg.Get("authToken").NonEmptyString(); !ok {
			r.Warnf(domain.FindingConditional, loc.Key("authToken"), "ontbreekt terwijl auth=bearer-token.")
		}
	}
}

// isEndpoint accepts what the site's integration client can resolve:
// absolute http(s) URLs, site paths, and relative paths.
func isEndpoint(s string) bool {
	if domain.IsURLOrEmpty(s) {
		return true
	}
	return !strings.Contains(s, "://") && !strings.ContainsAny(s, " \t\n")
}
