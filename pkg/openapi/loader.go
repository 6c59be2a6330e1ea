// Package openapi adapts kin-openapi documents into the IR consumed by the
// rest of the generator.
package openapi

import (
	"net/url"

	"github.com/getkin/kin-openapi/openapi3"
)

// LoadDocument loads an OpenAPI document from a local file path or an
// HTTP(S) URL.
func LoadDocument(input string) (*openapi3.T, error) {
	loader := &openapi3.Loader{IsExternalRefsAllowed: true}
	return LoadDocumentWithLoader(loader, input)
}

// ValidateDocument loads and validates an OpenAPI document.
func ValidateDocument(input string) error {
	loader := &openapi3.Loader{IsExternalRefsAllowed: true}
	doc, err := LoadDocumentWithLoader(loader, input)
	if err != nil {
		return err
	}
	return doc.Validate(loader.Context)
}

// LoadDocumentWithLoader loads an OpenAPI document using a caller-supplied
// loader, for callers that need custom ref resolution.
func LoadDocumentWithLoader(loader *openapi3.Loader, input string) (*openapi3.T, error) {
	if u, err := url.Parse(input); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return loader.LoadFromURI(u)
	}
	return loader.LoadFromFile(input)
}
