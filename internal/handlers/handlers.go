package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Brownie44l1/obesity-api/internal/dataset"
	"github.com/Brownie44l1/obesity-api/internal/metrics"
	"github.com/Brownie44l1/obesity-api/internal/model"
)

type Handler struct {
	predictor *model.Predictor
	summaries *dataset.Summarizer
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewHandler wires the handlers. summaries may be nil when no dataset is
// available; the summary endpoint then answers 503.
func NewHandler(predictor *model.Predictor, summaries *dataset.Summarizer, m *metrics.Metrics, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = metrics.New()
	}
	return &Handler{
		predictor: predictor,
		summaries: summaries,
		metrics:   m,
		logger:    logger,
	}
}

type predictResponse struct {
	Status string `json:"status"`
	*model.PredictionResult
}

type errorResponse struct {
	Error string `json:"erro"`
}

type schemaResponse struct {
	Features []string `json:"features"`
	Classes  []string `json:"classes"`
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Predict maps one flat feature object to a diagnosis. Every failure,
// including a malformed body, is answered with 500 and an "erro" field.
func (h *Handler) Predict(c *gin.Context) {
	start := time.Now()

	body, err := c.GetRawData()
	if err != nil {
		h.fail(c, "invalid_body", err)
		return
	}
	// Unmarshal rejects anything after the top-level value.
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		h.fail(c, "invalid_body", err)
		return
	}
	if raw == nil {
		h.fail(c, "invalid_body", errors.New("request body must be a JSON object"))
		return
	}

	record, err := h.predictor.ParseRecord(raw)
	if err != nil {
		h.fail(c, "invalid_field", err)
		return
	}

	result, err := h.predictor.Predict(c.Request.Context(), record)
	if err != nil {
		reason := "prediction"
		var mismatch *model.SchemaMismatchError
		if errors.As(err, &mismatch) {
			reason = "schema_mismatch"
		}
		h.fail(c, reason, err)
		return
	}

	h.metrics.ObservePrediction(result.Label, time.Since(start))
	h.logger.Debug("prediction served",
		zap.String("diagnostico", result.Label),
		zap.Float64("confianca", result.Confidence),
		zap.Float64("risco_total", result.CumulativeRisk),
	)
	c.JSON(http.StatusOK, predictResponse{Status: "ok", PredictionResult: result})
}

func (h *Handler) fail(c *gin.Context, reason string, err error) {
	h.metrics.ObserveFailure(reason)
	h.logger.Error("prediction request failed",
		zap.String("reason", reason),
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func (h *Handler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, schemaResponse{
		Features: h.predictor.Schema().Names(),
		Classes:  model.Labels[:],
	})
}

func (h *Handler) DatasetSummary(c *gin.Context) {
	if h.summaries == nil {
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "dataset not loaded"})
		return
	}

	summary, err := h.summaries.Summary(c.Query("diagnostico"))
	if err != nil {
		var unknown *dataset.UnknownDiagnosisError
		if errors.As(err, &unknown) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("dataset summary failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
