package model

// Metadata describes the artifacts exported next to the ONNX graph: the
// ordered feature schema, the fitted StandardScaler and the class order.
type Metadata struct {
	InputName    string       `json:"input_name"`
	OutputName   string       `json:"output_name"`
	FeatureNames []string     `json:"feature_names"`
	Classes      []string     `json:"classes"`
	Scaler       ScalerParams `json:"scaler"`
}

// ScalerParams are the fitted StandardScaler statistics, one entry per feature.
type ScalerParams struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// FeatureRecord is one individual's flat feature mapping, built per request.
type FeatureRecord map[string]float64

// PredictionResult is the diagnosis returned for one record.
type PredictionResult struct {
	Label          string             `json:"diagnostico"`
	ClassIndex     int                `json:"classe"`
	Confidence     float64            `json:"confianca"`
	CumulativeRisk float64            `json:"risco_total"`
	BMI            float64            `json:"imc"`
	LikelyAthlete  bool               `json:"atleta_detectado"`
	Probabilities  map[string]float64 `json:"probabilidades"`
}
