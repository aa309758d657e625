package model

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	defaultInputName  = "input"
	defaultOutputName = "probabilities"
)

// LoadMetadata reads and validates the metadata file exported with the model.
func LoadMetadata(path string) (Metadata, error) {
	metaFile, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, &ArtifactLoadError{Path: path, Err: err}
	}

	var metadata Metadata
	if err := json.Unmarshal(metaFile, &metadata); err != nil {
		return Metadata{}, &ArtifactLoadError{Path: path, Err: fmt.Errorf("failed to parse metadata: %w", err)}
	}

	if err := metadata.normalize(); err != nil {
		return Metadata{}, &ArtifactLoadError{Path: path, Err: err}
	}
	return metadata, nil
}

func (m *Metadata) normalize() error {
	if m.InputName == "" {
		m.InputName = defaultInputName
	}
	if m.OutputName == "" {
		m.OutputName = defaultOutputName
	}
	if len(m.FeatureNames) == 0 {
		m.FeatureNames = append([]string(nil), DefaultFeatureNames...)
	}
	if len(m.Scaler.Mean) != len(m.FeatureNames) {
		return &SchemaMismatchError{Expected: len(m.FeatureNames), Got: len(m.Scaler.Mean)}
	}

	if len(m.Classes) == 0 {
		return nil
	}
	if len(m.Classes) != NumClasses {
		return fmt.Errorf("expected %d classes, got %d", NumClasses, len(m.Classes))
	}
	// Classes exported with a known spelling must follow the ordinal order.
	for i, class := range m.Classes {
		display := DisplayLabel(class)
		if _, known := LabelIndex(display); known && display != Labels[i] {
			return fmt.Errorf("class %d is %q, expected %q", i, class, Labels[i])
		}
	}
	return nil
}
