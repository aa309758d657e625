package model

import (
	"context"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// Classifier turns a scaled feature vector into a class index and the
// per-class probabilities, ordered like Labels.
type Classifier interface {
	Classify(ctx context.Context, features []float32) (int, []float64, error)
}

// Server runs the exported classifier through ONNX Runtime. The session is
// bound to a single pair of tensors, so runs are serialized.
type Server struct {
	mu           sync.Mutex
	session      *ort.AdvancedSession
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
}

func NewServer(modelPath string, metadata Metadata, libraryPath string) (*Server, error) {
	if libraryPath != "" {
		ort.SetSharedLibraryPath(libraryPath)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, &ArtifactLoadError{Path: modelPath, Err: fmt.Errorf("failed to initialize ONNX environment: %w", err)}
	}

	inputShape := ort.NewShape(1, int64(len(metadata.FeatureNames)))
	outputShape := ort.NewShape(1, NumClasses)

	inputTensor, err := ort.NewEmptyTensor[float32](inputShape)
	if err != nil {
		ort.DestroyEnvironment()
		return nil, &ArtifactLoadError{Path: modelPath, Err: fmt.Errorf("failed to create input tensor: %w", err)}
	}

	outputTensor, err := ort.NewEmptyTensor[float32](outputShape)
	if err != nil {
		inputTensor.Destroy()
		ort.DestroyEnvironment()
		return nil, &ArtifactLoadError{Path: modelPath, Err: fmt.Errorf("failed to create output tensor: %w", err)}
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{metadata.InputName}, []string{metadata.OutputName},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		ort.DestroyEnvironment()
		return nil, &ArtifactLoadError{Path: modelPath, Err: fmt.Errorf("failed to create ONNX session: %w", err)}
	}

	return &Server{
		session:      session,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
	}, nil
}

func (s *Server) Classify(ctx context.Context, features []float32) (int, []float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	input := s.inputTensor.GetData()
	if len(features) != len(input) {
		return 0, nil, &SchemaMismatchError{Expected: len(input), Got: len(features)}
	}
	copy(input, features)

	if err := s.session.Run(); err != nil {
		return 0, nil, fmt.Errorf("inference failed: %w", err)
	}

	outputData := s.outputTensor.GetData()
	probabilities := make([]float64, len(outputData))
	for i, val := range outputData {
		probabilities[i] = float64(val)
	}
	return ArgMax(probabilities), probabilities, nil
}

func (s *Server) Close() {
	if s.inputTensor != nil {
		s.inputTensor.Destroy()
	}
	if s.outputTensor != nil {
		s.outputTensor.Destroy()
	}
	if s.session != nil {
		s.session.Destroy()
	}
	ort.DestroyEnvironment()
}
