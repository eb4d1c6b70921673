package tirebench

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadDocument decodes a coefficient document from r.
func ReadDocument(r io.Reader) (CoefficientDocument, error) {
	var doc CoefficientDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return CoefficientDocument{}, fmt.Errorf("decode coefficient document: %w", err)
	}
	return doc, nil
}

// WriteDocument encodes doc to w as indented JSON.
func WriteDocument(w io.Writer, doc CoefficientDocument) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode coefficient document: %w", err)
	}
	return nil
}

// Document captures the model's current coefficients.
func Document(m Model, name string) CoefficientDocument {
	info := m.Info()
	return CoefficientDocument{
		Model:       info.Name,
		Name:        name,
		Description: info.Description,
		Parameters:  m.Parameters(),
	}
}

// FromDocument builds the document's model and loads its coefficients. The
// parameter set must be complete for the model.
func FromDocument(doc CoefficientDocument, opts Options) (Model, error) {
	m, ok := New(doc.Model, opts)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, doc.Model)
	}
	if err := m.SetParameters(doc.Parameters); err != nil {
		return nil, fmt.Errorf("%s coefficients: %w", doc.Model, err)
	}
	return m, nil
}

// Load reads a coefficient document from path and returns its model.
func Load(path string, opts Options) (Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := ReadDocument(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m, err := FromDocument(doc, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Save writes the model's coefficients to path as a coefficient document.
func Save(path string, m Model, name string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteDocument(f, Document(m, name)); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
