package config

import (
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the inference service settings.
type Config struct {
	Port             string `env:"PORT" envDefault:"8080"`
	ModelPath        string `env:"MODEL_PATH" envDefault:"models/model.onnx"`
	MetadataPath     string `env:"METADATA_PATH" envDefault:"models/model_metadata.json"`
	ONNXRuntimeLib   string `env:"ONNXRUNTIME_LIB"`
	DatasetPath      string `env:"DATASET_PATH" envDefault:"data/Obesity.csv"`
	SummaryCacheSize int    `env:"SUMMARY_CACHE_SIZE" envDefault:"16"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"json"`
	LogFile          string `env:"LOG_FILE"`
}

// ClientConfig holds the diagnosis client settings.
type ClientConfig struct {
	PredictURL string        `env:"PREDICT_URL" envDefault:"http://localhost:8080"`
	Timeout    time.Duration `env:"PREDICT_TIMEOUT" envDefault:"10s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func LoadClient() (*ClientConfig, error) {
	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve anchors relative artifact paths at the project root. When the
// binary runs from cmd/server the root is two levels up.
func (c *Config) Resolve(workDir string) {
	root := workDir
	if filepath.Base(root) == "server" {
		root = filepath.Join(root, "..", "..")
	}
	c.ModelPath = anchor(root, c.ModelPath)
	c.MetadataPath = anchor(root, c.MetadataPath)
	c.DatasetPath = anchor(root, c.DatasetPath)
}

func anchor(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
