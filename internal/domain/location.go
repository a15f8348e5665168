package domain

import "strconv"

// Location addresses a value inside a content document, rendered as
// "artists.json:tekno[3].links[0].url".
type Location struct {
	Document string
	Path     string
}

// At returns the location of a document's root.
func At(document string) Location {
	return Location{Document: document}
}

// Key descends into an object member.
func (l Location) Key(name string) Location {
	if l.Path == "" {
		l.Path = name
		return l
	}
	l.Path += "." + name
	return l
}

// Index descends into a sequence element.
func (l Location) Index(i int) Location {
	l.Path += "[" + strconv.Itoa(i) + "]"
	return l
}

// String renders the location. The root of a document renders as the
// bare document name.
func (l Location) String() string {
	if l.Path == "" {
		return l.Document
	}
	return l.Document + ":" + l.Path
}
