// Package similarity is the boundary to the external semantic-similarity
// service. The assessor treats it as opaque: given two texts it returns a
// number in [0,1] or an error. Callers must map errors to the neutral score
// rather than propagate them; see NeutralScore.
package similarity

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// NeutralScore is the similarity assumed when the external service is
// unavailable. It produces a zero adjustment downstream.
const NeutralScore = 0.5

const (
	defaultEmbeddingModel = "text-embedding-004"
	defaultTimeout        = 10 * time.Second
	maxAttempts           = 2
)

// Provider computes semantic similarity between two texts, in [0,1].
type Provider interface {
	Similarity(ctx context.Context, textA, textB string) (float64, error)
}

// GeminiProvider computes similarity from Gemini embeddings.
type GeminiProvider struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewGeminiProvider creates a provider backed by the Gemini embedding API.
func NewGeminiProvider(ctx context.Context, apiKey string, logger *zap.Logger) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:  client,
		model:   defaultEmbeddingModel,
		timeout: defaultTimeout,
		logger:  logger,
	}, nil
}

// Similarity embeds both texts and returns their cosine similarity mapped
// into [0,1]. Each embedding call runs under a bounded timeout with a
// single retry.
func (p *GeminiProvider) Similarity(ctx context.Context, textA, textB string) (float64, error) {
	vecA, err := p.embed(ctx, textA)
	if err != nil {
		return 0, fmt.Errorf("embed first text: %w", err)
	}
	vecB, err := p.embed(ctx, textB)
	if err != nil {
		return 0, fmt.Errorf("embed second text: %w", err)
	}

	cos, err := Cosine(vecA, vecB)
	if err != nil {
		return 0, err
	}

	// Map cosine [-1,1] into [0,1].
	return (cos + 1) / 2, nil
}

// embed fetches one embedding vector, retrying once on failure.
func (p *GeminiProvider) embed(ctx context.Context, text string) ([]float32, error) {
	model := p.client.EmbeddingModel(p.model)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, p.timeout)
		resp, err := model.EmbedContent(callCtx, genai.Text(text))
		cancel()

		if err == nil {
			if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
				return nil, errors.New("empty embedding in response")
			}
			return resp.Embedding.Values, nil
		}

		lastErr = err
		p.logger.Warn("embedding call failed",
			zap.Int("attempt", attempt),
			zap.Error(err))
		if ctx.Err() != nil {
			break
		}
	}

	return nil, lastErr
}

// Close releases the underlying client.
func (p *GeminiProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}

// Cosine computes the cosine similarity between two equal-length vectors.
func Cosine(a, b []float32) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, fmt.Errorf("dimension mismatch: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, errors.New("zero-magnitude vector")
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// Neutral is a Provider that always returns NeutralScore. It stands in when
// no external service is configured, making the similarity adjustment a
// no-op.
type Neutral struct{}

// Similarity always returns the neutral score.
func (Neutral) Similarity(context.Context, string, string) (float64, error) {
	return NeutralScore, nil
}
