package model

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Predictor holds the immutable state built once at start-up: the schema,
// the fitted scaler and the classifier. It is safe for concurrent use as
// long as the classifier is.
type Predictor struct {
	schema     *Schema
	scaler     *Scaler
	classifier Classifier
	logger     *zap.Logger
}

func NewPredictor(metadata Metadata, classifier Classifier, logger *zap.Logger) (*Predictor, error) {
	if classifier == nil {
		return nil, fmt.Errorf("classifier is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	schema, err := NewSchema(metadata.FeatureNames)
	if err != nil {
		return nil, fmt.Errorf("invalid feature schema: %w", err)
	}
	scaler, err := NewScaler(metadata.Scaler)
	if err != nil {
		return nil, fmt.Errorf("invalid scaler: %w", err)
	}
	if scaler.Dim() != schema.Len() {
		return nil, &SchemaMismatchError{Expected: schema.Len(), Got: scaler.Dim()}
	}

	return &Predictor{
		schema:     schema,
		scaler:     scaler,
		classifier: classifier,
		logger:     logger,
	}, nil
}

func (p *Predictor) Schema() *Schema {
	return p.schema
}

// ParseRecord converts a decoded JSON object into a FeatureRecord. Only the
// fields the predictor consumes are type-checked and kept: numbers pass
// through, booleans become 0/1 and null counts as absent.
func (p *Predictor) ParseRecord(raw map[string]any) (FeatureRecord, error) {
	record := make(FeatureRecord, p.schema.Len())
	for field, value := range raw {
		if !p.consumes(field) {
			continue
		}
		switch v := value.(type) {
		case nil:
		case float64:
			record[field] = v
		case json.Number:
			f, err := v.Float64()
			if err != nil {
				return nil, &FieldTypeError{Field: field, Value: value}
			}
			record[field] = f
		case bool:
			if v {
				record[field] = 1
			} else {
				record[field] = 0
			}
		default:
			return nil, &FieldTypeError{Field: field, Value: value}
		}
	}
	return record, nil
}

func (p *Predictor) consumes(field string) bool {
	switch field {
	case FeatureWeight, FeatureHeight, FeatureBMI, FeatureActivity:
		return true
	}
	return p.schema.Has(field)
}

// Predict runs derive → reindex → scale → classify → aggregate for one record.
func (p *Predictor) Predict(ctx context.Context, record FeatureRecord) (*PredictionResult, error) {
	derived := Derive(record)

	if missing := p.schema.Missing(derived); len(missing) > 0 {
		p.logger.Debug("zero-filling missing features", zap.Strings("features", missing))
	}

	scaled, err := p.scaler.Transform(p.schema.Reindex(derived))
	if err != nil {
		return nil, fmt.Errorf("failed to scale features: %w", err)
	}

	input := make([]float32, len(scaled))
	for i, v := range scaled {
		input[i] = float32(v)
	}

	classIndex, probabilities, err := p.classifier.Classify(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("prediction failed: %w", err)
	}
	if len(probabilities) != NumClasses {
		return nil, fmt.Errorf("prediction failed: expected %d probabilities, got %d", NumClasses, len(probabilities))
	}

	byLabel := make(map[string]float64, NumClasses)
	for i, prob := range probabilities {
		byLabel[Labels[i]] = prob
	}

	return &PredictionResult{
		Label:          LabelFor(classIndex),
		ClassIndex:     classIndex,
		Confidence:     Confidence(probabilities),
		CumulativeRisk: CumulativeRisk(probabilities),
		BMI:            derived[FeatureBMI],
		LikelyAthlete:  derived[FeatureLikelyAthlete] == 1,
		Probabilities:  byLabel,
	}, nil
}
