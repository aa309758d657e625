package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservePrediction(t *testing.T) {
	m := New()

	m.ObservePrediction("Peso Normal", 3*time.Millisecond)
	m.ObservePrediction("Peso Normal", 5*time.Millisecond)
	m.ObservePrediction("Obesidade G. I", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.predictions.WithLabelValues("Peso Normal")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.predictions.WithLabelValues("Obesidade G. I")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.latency))
}

func TestObserveFailureAndRequest(t *testing.T) {
	m := New()

	m.ObserveFailure("invalid_body")
	m.ObserveRequest("/predict", "500")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("invalid_body")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/predict", "500")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObservePrediction("Peso Normal", time.Millisecond)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `obesity_predictions_total{diagnostico="Peso Normal"} 1`)
	assert.Contains(t, string(body), "obesity_prediction_duration_seconds_bucket")
}
