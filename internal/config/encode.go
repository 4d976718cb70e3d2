package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/atomic/internal/catalog"
)

// ExportDocument builds a document describing entries.
func ExportDocument(entries []catalog.Entry) *Document {
	doc := &Document{Version: DocumentVersion}
	for _, entry := range entries {
		doc.Components = append(doc.Components, FromEntry(entry))
	}
	return doc
}

// EncodeDocument writes doc as YAML with two-space indentation.
func EncodeDocument(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return enc.Close()
}
