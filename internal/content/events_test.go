package content

import (
	"testing"

	"github.com/kwartier-west/kwcheck/internal/domain"
)

func eventsDoc(event string) string {
	return `{"tekno": [` + event + `], "hiphop": []}`
}

func TestValidator_Events_LineupReferences(t *testing.T) {
	tests := []struct {
		name         string
		lineup       string
		wantWarnings []string
	}{
		{
			name:   "known slug",
			lineup: `[{"slug": "dj-test"}]`,
		},
		{
			name:   "unknown slug",
			lineup: `[{"slug": "ghost-artist"}]`,
			wantWarnings: []string{
				`events.json:tekno[0].lineup[0].slug "ghost-artist" bestaat niet in artists.json (tekno).`,
			},
		},
		{
			name:   "slug of the other side",
			lineup: `[{"slug": "mc-test"}]`,
			wantWarnings: []string{
				`events.json:tekno[0].lineup[0].slug "mc-test" bestaat niet in artists.json (tekno).`,
			},
		},
		{
			name:   "name only",
			lineup: `[{"name": "Guest"}]`,
			wantWarnings: []string{
				"events.json:tekno[0].lineup[0].slug ontbreekt (handig voor doorklik).",
			},
		},
		{
			name:   "empty lineup",
			lineup: `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.NewReport()
			v := &Validator{}
			lookup := lookupOf("tekno", "dj-test", "hiphop", "mc-test")

			v.Events(r, doc(t, eventsDoc(`{"id": "e1", "title": "T", "date": "2025-06-01", "lineup": `+tt.lineup+`}`)), lookup)

			assertMessages(t, "errors", r.Errors(), nil)
			assertMessages(t, "warnings", r.Warnings(), tt.wantWarnings)
		})
	}
}

func TestValidator_Events_LineupShape(t *testing.T) {
	r := domain.NewReport()
	v := &Validator{}

	v.Events(r, doc(t, `{"tekno": [
		{"id": "e1", "title": "T", "date": "2025-06-01", "lineup": "dj-test"},
		{"id": "e2", "title": "T", "date": "2025-06-01", "lineup": [null, {"slug": "dj-test"}]}
	], "hiphop": []}`), lookupOf("tekno", "dj-test"))

	assertMessages(t, "errors", r.Errors(), []string{
		"events.json:tekno[0].lineup moet een array zijn als het bestaat.",
		"events.json:tekno[1].lineup[0] is geen object.",
	})
	assertMessages(t, "warnings", r.Warnings(), nil)
}

func TestValidator_Events_Suggestion(t *testing.T) {
	r := domain.NewReport()
	v := &Validator{Advisor: &fakeAdvisor{near: map[string]string{"dj-tset": "dj-test"}}}

	v.Events(r, doc(t, eventsDoc(`{"id": "e1", "title": "T", "date": "2025-06-01", "lineup": [{"slug": "dj-tset"}]}`)),
		lookupOf("tekno", "dj-test"))

	assertMessages(t, "warnings", r.Warnings(), []string{
		`events.json:tekno[0].lineup[0].slug "dj-tset" bestaat niet in artists.json (tekno). Bedoel je "dj-test"?`,
	})
}

func TestValidator_Events_ExternalTickets(t *testing.T) {
	tests := []struct {
		name         string
		tickets      string
		wantWarnings []string
	}{
		{
			name:    "external with url",
			tickets: `{"mode": "external", "url": "https://tickets.example.org/e1"}`,
		},
		{
			name:    "external with empty url",
			tickets: `{"mode": "external", "url": ""}`,
			wantWarnings: []string{
				"events.json:tekno[0].tickets.url is leeg terwijl tickets.mode=external.",
			},
		},
		{
			name:    "external without url",
			tickets: `{"mode": "external"}`,
			wantWarnings: []string{
				"events.json:tekno[0].tickets.url is leeg terwijl tickets.mode=external.",
			},
		},
		{
			name:    "internal without url",
			tickets: `{"mode": "internal"}`,
		},
		{
			name:    "malformed url",
			tickets: `{"mode": "external", "url": "tickets.example.org"}`,
			wantWarnings: []string{
				`events.json:tekno[0].tickets.url lijkt geen geldige URL (staat: "tickets.example.org").`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.NewReport()
			v := &Validator{}

			v.Events(r, doc(t, eventsDoc(`{"id": "e1", "title": "T", "date": "2025-06-01", "tickets": `+tt.tickets+`}`)), nil)

			assertMessages(t, "errors", r.Errors(), nil)
			assertMessages(t, "warnings", r.Warnings(), tt.wantWarnings)
		})
	}
}

func TestValidator_Events_TicketMode(t *testing.T) {
	tests := []struct {
		name       string
		event      string
		wantErrors []string
	}{
		{
			name:  "absent tickets default to tba",
			event: `{"id": "e1", "title": "T", "date": "2025-06-01"}`,
		},
		{
			name:  "null mode defaults to tba",
			event: `{"id": "e1", "title": "T", "date": "2025-06-01", "tickets": {"mode": null}}`,
		},
		{
			name:  "unknown mode",
			event: `{"id": "e1", "title": "T", "date": "2025-06-01", "tickets": {"mode": "door"}}`,
			wantErrors: []string{
				`events.json:tekno[0].tickets.mode moet one of: external | internal | tba (staat: "door")`,
			},
		},
		{
			name:  "tickets not an object",
			event: `{"id": "e1", "title": "T", "date": "2025-06-01", "tickets": "free"}`,
			wantErrors: []string{
				"events.json:tekno[0].tickets moet een object zijn als het bestaat.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.NewReport()
			v := &Validator{}

			v.Events(r, doc(t, eventsDoc(tt.event)), nil)

			assertMessages(t, "errors", r.Errors(), tt.wantErrors)
		})
	}
}

func TestValidator_Events_FieldRules(t *testing.T) {
	r := domain.NewReport()
	v := &Validator{}

	v.Events(r, doc(t, `{"tekno": [
		{"id": "e1", "title": "T", "date": "2025-06-01", "time": "22u"},
		{"id": "e1", "date": "01-06-2025"},
		{"title": "T", "date": "2025-06-01", "time": "", "source": {"platform": "ra", "url": "ra.co/events/1"}}
	], "hiphop": [
		{"id": "e1", "title": "T", "date": "2025-06-01", "source": "ra"}
	]}`), nil)

	assertMessages(t, "errors", r.Errors(), []string{
		`events.json:tekno[1].id "e1" is dubbel binnen "tekno".`,
		"events.json:tekno[1].title ontbreekt of is geen string.",
		"events.json:tekno[1].date moet YYYY-MM-DD zijn.",
		"events.json:tekno[2].id ontbreekt of is geen string.",
		"events.json:hiphop[0].source moet een object zijn als het bestaat.",
	})
	assertMessages(t, "warnings", r.Warnings(), []string{
		`events.json:tekno[0].time lijkt niet HH:MM (staat: "22u")`,
		`events.json:tekno[2].source.url lijkt geen geldige URL (staat: "ra.co/events/1").`,
	})
}

func TestValidator_Events_MalformedRootShortCircuits(t *testing.T) {
	r := domain.NewReport()
	v := &Validator{}

	v.Events(r, doc(t, `[{"id": "e1"}]`), lookupOf("tekno", "a"))

	assertMessages(t, "errors", r.Errors(), []string{"events.json moet een object zijn."})
	assertMessages(t, "warnings", r.Warnings(), nil)
}

func TestValidator_Events_CalendarLooseness(t *testing.T) {
	r := domain.NewReport()
	v := &Validator{}

	v.Events(r, doc(t, eventsDoc(`{"id": "e1", "title": "T", "date": "2024-02-31", "time": "25:61"}`)), nil)

	assertMessages(t, "errors", r.Errors(), nil)
	assertMessages(t, "warnings", r.Warnings(), nil)
}
