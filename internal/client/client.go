package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Brownie44l1/obesity-api/internal/model"
)

// Diagnosis is the service's answer to POST /predict.
type Diagnosis struct {
	Status         string             `json:"status"`
	Label          string             `json:"diagnostico"`
	Confidence     float64            `json:"confianca"`
	CumulativeRisk float64            `json:"risco_total"`
	BMI            float64            `json:"imc"`
	LikelyAthlete  bool               `json:"atleta_detectado"`
	Probabilities  map[string]float64 `json:"probabilidades"`
}

// UpstreamUnavailableError means the service could not be reached or did
// not answer within the timeout.
type UpstreamUnavailableError struct {
	URL string
	Err error
}

func (e *UpstreamUnavailableError) Error() string {
	return fmt.Sprintf("prediction service unavailable at %s: %v", e.URL, e.Err)
}

func (e *UpstreamUnavailableError) Unwrap() error {
	return e.Err
}

// ServiceError is a non-2xx answer from the service.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("prediction service returned %d: %s", e.StatusCode, e.Message)
}

// Client calls the inference service once per diagnosis; failures are
// returned to the caller as-is, without retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Predict(ctx context.Context, record model.FeatureRecord) (*Diagnosis, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode features: %w", err)
	}

	url := c.baseURL + "/predict"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamUnavailableError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamUnavailableError{URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure struct {
			Error string `json:"erro"`
		}
		message := strings.TrimSpace(string(body))
		if json.Unmarshal(body, &failure) == nil && failure.Error != "" {
			message = failure.Error
		}
		return nil, &ServiceError{StatusCode: resp.StatusCode, Message: message}
	}

	var diagnosis Diagnosis
	if err := json.Unmarshal(body, &diagnosis); err != nil {
		return nil, fmt.Errorf("invalid prediction response: %w", err)
	}
	return &diagnosis, nil
}
