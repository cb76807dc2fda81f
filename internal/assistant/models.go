// internal/assistant/models.go
package assistant

import (
	"context"

	"nesscute-assistant/internal/models"
)

// AnswerResult is the sole externally visible output of the pipeline.
// Relevant is true only when the question passed classification and the
// generation step ran.
type AnswerResult struct {
	Answer   string `json:"answer"`
	Relevant bool   `json:"isRelevant"`
}

// Catalog is the read-only view of the menu this pipeline consumes.
// Implemented by catalog.Store; faked in tests.
type Catalog interface {
	FindAll(ctx context.Context) ([]models.MenuItem, error)
	FindByCategory(ctx context.Context, category models.Category) ([]models.MenuItem, error)
	FindAllOrderByRatingDesc(ctx context.Context) ([]models.MenuItem, error)
}

// Generator produces answer text for a composed prompt. It is total:
// degraded outcomes surface as fixed fallback strings, never as errors.
type Generator interface {
	Generate(ctx context.Context, prompt string) string
}

// generationRequest is the wire payload for the Ollama generate API.
type generationRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generationResponse is the happy-path shape of an Ollama reply.
type generationResponse struct {
	Response string `json:"response"`
}
