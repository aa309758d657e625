package model

import (
	"errors"
	"fmt"
)

// Schema is the ordered list of feature names the classifier was trained on.
type Schema struct {
	names []string
	index map[string]int
}

func NewSchema(names []string) (*Schema, error) {
	if len(names) == 0 {
		return nil, errors.New("schema has no features")
	}
	index := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("feature %d has an empty name", i)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate feature %q", name)
		}
		index[name] = i
	}
	return &Schema{
		names: append([]string(nil), names...),
		index: index,
	}, nil
}

func (s *Schema) Len() int {
	return len(s.names)
}

func (s *Schema) Names() []string {
	return append([]string(nil), s.names...)
}

func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Reindex projects a record onto the schema order. Columns absent from the
// record are filled with zero and columns outside the schema are dropped.
func (s *Schema) Reindex(record FeatureRecord) []float64 {
	vector := make([]float64, len(s.names))
	for i, name := range s.names {
		vector[i] = record[name]
	}
	return vector
}

// Missing lists the schema columns Reindex would zero-fill.
func (s *Schema) Missing(record FeatureRecord) []string {
	var missing []string
	for _, name := range s.names {
		if _, ok := record[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
