package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Brownie44l1/obesity-api/internal/dataset"
	"github.com/Brownie44l1/obesity-api/internal/metrics"
	"github.com/Brownie44l1/obesity-api/internal/model"
)

type fakeClassifier struct {
	index         int
	probabilities []float64
	err           error
	panics        bool
	calls         int
	last          []float32
}

func (f *fakeClassifier) Classify(_ context.Context, features []float32) (int, []float64, error) {
	if f.panics {
		panic("session destroyed")
	}
	f.calls++
	f.last = append([]float32(nil), features...)
	return f.index, f.probabilities, f.err
}

func normalWeightClassifier() *fakeClassifier {
	return &fakeClassifier{index: 1, probabilities: []float64{0.05, 0.6, 0.2, 0.1, 0.03, 0.01, 0.01}}
}

func newTestRouter(t *testing.T, classifier model.Classifier, summaries *dataset.Summarizer) (*gin.Engine, *metrics.Metrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	names := model.DefaultFeatureNames
	mean := make([]float64, len(names))
	scale := make([]float64, len(names))
	for i := range scale {
		scale[i] = 1
	}
	predictor, err := model.NewPredictor(model.Metadata{
		FeatureNames: names,
		Scaler:       model.ScalerParams{Mean: mean, Scale: scale},
	}, classifier, zap.NewNop())
	require.NoError(t, err)

	m := metrics.New()
	h := NewHandler(predictor, summaries, m, zap.NewNop())
	return NewRouter(zap.NewNop(), h), m
}

func counterSum(t *testing.T, m *metrics.Metrics, name string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	var sum float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			sum += metric.GetCounter().GetValue()
		}
	}
	return sum
}

func fullPayload() map[string]any {
	return map[string]any{
		"Genero":                             0,
		"Idade":                              25,
		"Altura":                             1.70,
		"Peso":                               70.0,
		"Historico_Familiar":                 true,
		"Consumo_Calorico":                   1,
		"Freq_Vegetais":                      2,
		"Num_refeicoes":                      3,
		"Comes_Entre_Refeicoes":              1,
		"Fumante":                            false,
		"Consumo_Agua":                       2,
		"Monitora_Calorias":                  0,
		"Freq_Atividade_Fisica":              1,
		"Tempo_uso_dispositivos_eletronicos": 5,
		"Consumo_Alcool":                     1,
		"Transporte_Bicicleta":               0,
		"Transporte_Moto":                    0,
		"Transporte_Publico":                 1,
		"Transporte_Caminhada":               0,
	}
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t, normalWeightClassifier(), nil)

	w := doJSON(t, r, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestPredictNormalWeight(t *testing.T) {
	r, m := newTestRouter(t, normalWeightClassifier(), nil)

	w := doJSON(t, r, http.MethodPost, "/predict", fullPayload())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "Peso Normal", resp["diagnostico"])
	assert.InDelta(t, 0.6, resp["confianca"], 1e-9)
	assert.InDelta(t, 0.35, resp["risco_total"], 1e-9)
	assert.InDelta(t, 24.22, resp["imc"], 0.01)
	assert.Equal(t, false, resp["atleta_detectado"])
	assert.Contains(t, resp, "probabilidades")

	assert.Equal(t, 1.0, counterSum(t, m, "obesity_predictions_total"))
}

func TestPredictMissingFieldDefaultsToZero(t *testing.T) {
	classifier := normalWeightClassifier()
	r, _ := newTestRouter(t, classifier, nil)

	payload := fullPayload()
	delete(payload, "Consumo_Alcool")

	w := doJSON(t, r, http.MethodPost, "/predict", payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for i, name := range model.DefaultFeatureNames {
		if name == model.FeatureAlcohol {
			assert.Zero(t, classifier.last[i])
		}
	}
}

func TestPredictIgnoresExtraFields(t *testing.T) {
	classifier := normalWeightClassifier()
	r, _ := newTestRouter(t, classifier, nil)

	payload := fullPayload()
	payload["nome"] = "Maria"
	payload["Cor_Favorita"] = 3

	w := doJSON(t, r, http.MethodPost, "/predict", payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, classifier.last, len(model.DefaultFeatureNames))
}

func TestPredictErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"Idade": 25,`},
		{name: "empty body", body: ``},
		{name: "array body", body: `[1, 2, 3]`},
		{name: "null body", body: `null`},
		{name: "trailing data", body: `{"Idade": 25} this is not json`},
		{name: "two objects", body: `{"Idade": 25}{"Idade": 30}`},
		{name: "string feature", body: `{"Idade": "vinte"}`},
		{name: "object feature", body: `{"Peso": {"kg": 70}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := normalWeightClassifier()
			r, _ := newTestRouter(t, classifier, nil)

			w := doJSON(t, r, http.MethodPost, "/predict", tt.body)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["erro"])
			assert.NotContains(t, resp, "diagnostico")
			assert.Zero(t, classifier.calls)
		})
	}
}

func TestPredictClassifierFailure(t *testing.T) {
	r, m := newTestRouter(t, &fakeClassifier{err: errors.New("inference failed")}, nil)

	w := doJSON(t, r, http.MethodPost, "/predict", fullPayload())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "inference failed")
	assert.NotContains(t, w.Body.String(), "diagnostico")
	assert.Equal(t, 1.0, counterSum(t, m, "obesity_prediction_failures_total"))
}

func TestPredictRecoversFromPanic(t *testing.T) {
	r, _ := newTestRouter(t, &fakeClassifier{panics: true}, nil)

	w := doJSON(t, r, http.MethodPost, "/predict", fullPayload())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["erro"])
}

func TestMode(t *testing.T) {
	assert.Equal(t, gin.DebugMode, Mode("debug"))
	assert.Equal(t, gin.DebugMode, Mode(" DEBUG "))
	assert.Equal(t, gin.ReleaseMode, Mode("info"))
	assert.Equal(t, gin.ReleaseMode, Mode(""))
}

func TestCORSPreflight(t *testing.T) {
	r, _ := newTestRouter(t, normalWeightClassifier(), nil)

	w := doJSON(t, r, http.MethodOptions, "/predict", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	r, _ := newTestRouter(t, normalWeightClassifier(), nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestSchema(t *testing.T) {
	r, _ := newTestRouter(t, normalWeightClassifier(), nil)

	w := doJSON(t, r, http.MethodGet, "/schema", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp schemaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.DefaultFeatureNames, resp.Features)
	assert.Len(t, resp.Classes, model.NumClasses)
}

const summaryCSV = `Gender,Age,Height,Weight,family_history_with_overweight,FCVC,NCP,CH2O,FAF,TUE,MTRANS,NObeyesdad
Female,21,1.62,64,yes,2,3,2,0,1,Public_Transportation,Normal_Weight
Male,29,1.62,80,no,2,3,2,0,0,Automobile,Obesity_Type_I
`

func TestDatasetSummary(t *testing.T) {
	ds, err := dataset.Parse(strings.NewReader(summaryCSV))
	require.NoError(t, err)
	summaries, err := dataset.NewSummarizer(ds, 4)
	require.NoError(t, err)
	r, _ := newTestRouter(t, normalWeightClassifier(), summaries)

	w := doJSON(t, r, http.MethodGet, "/dataset/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all dataset.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Equal(t, 2, all.Total)
	assert.InDelta(t, 50.0, all.ObesityRate, 1e-9)

	w = doJSON(t, r, http.MethodGet, "/dataset/summary?diagnostico=Obesity_Type_I", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var obese dataset.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &obese))
	assert.Equal(t, 1, obese.Total)

	w = doJSON(t, r, http.MethodGet, "/dataset/summary?diagnostico=Gigante", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDatasetSummaryUnavailable(t *testing.T) {
	r, _ := newTestRouter(t, normalWeightClassifier(), nil)

	w := doJSON(t, r, http.MethodGet, "/dataset/summary", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "erro")
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t, normalWeightClassifier(), nil)
	doJSON(t, r, http.MethodPost, "/predict", fullPayload())

	w := doJSON(t, r, http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "obesity_predictions_total")
	assert.Contains(t, w.Body.String(), `obesity_http_requests_total{code="200",route="/predict"} 1`)
}
