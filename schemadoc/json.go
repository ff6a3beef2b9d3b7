package schemadoc

import (
	json "github.com/goccy/go-json"

	"github.com/strictenc/sten"
)

// ImportJSON parses a JSON schema document and builds a sealed schema.
func ImportJSON(data []byte) (*sten.Schema, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Schema()
}

// ExportJSON renders the schema as an indented JSON document.
func ExportJSON(sc *sten.Schema) ([]byte, error) {
	doc, err := FromSchema(sc)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}
