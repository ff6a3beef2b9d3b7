package schemadoc

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/strictenc/sten"
)

// ImportYAML parses a YAML schema document stream and builds a single sealed
// schema. Multi-document streams are merged: later documents add types, and
// redefining a name with a different shape fails with duplicate_name from
// the registry.
func ImportYAML(data []byte) (*sten.Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	sc := sten.NewSchema()
	seen := false
	for {
		var doc Document
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		seen = true
		if doc.Version != 0 && doc.Version != FormatVersion {
			return nil, errors.New("schemadoc: unsupported document version in YAML stream")
		}
		if err := doc.defineAll(sc); err != nil {
			return nil, err
		}
	}
	if !seen {
		return nil, errors.New("schemadoc: no YAML documents found")
	}
	if err := sc.Seal(); err != nil {
		return nil, err
	}
	return sc, nil
}

// ExportYAML renders the schema as a YAML document.
func ExportYAML(sc *sten.Schema) ([]byte, error) {
	doc, err := FromSchema(sc)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}
