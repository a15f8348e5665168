package domain

import (
	"errors"
	"fmt"
)

// DocumentKind identifies one of the content documents.
type DocumentKind string

// Content documents, in validation order.
const (
	DocArtists      DocumentKind = "artists"
	DocEvents       DocumentKind = "events"
	DocPartners     DocumentKind = "partners"
	DocShop         DocumentKind = "shop"
	DocIntegrations DocumentKind = "integrations"
)

// DocumentKinds lists every document in dependency order: artists first,
// since events and shop resolve artist slugs.
var DocumentKinds = []DocumentKind{DocArtists, DocEvents, DocPartners, DocShop, DocIntegrations}

// DefaultFileName returns the conventional file name of a document.
func (k DocumentKind) DefaultFileName() string {
	return string(k) + ".json"
}

// Side is a content partition artists and events belong to.
type Side string

const (
	SideTekno  Side = "tekno"
	SideHiphop Side = "hiphop"
)

// Sides lists the content partitions in document order.
var Sides = []Side{SideTekno, SideHiphop}

// ErrDocumentMissing is returned by loaders when a document file does not exist.
var ErrDocumentMissing = errors.New("document not found")

// LoadError reports that a document could not be read or decoded.
type LoadError struct {
	Document string
	Err      error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Document, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}
