// internal/assistant/service.go
package assistant

import (
	"context"
	"fmt"

	"nesscute-assistant/internal/common/logger"
	"nesscute-assistant/internal/common/metrics"
)

const (
	refusalAnswer = "Sorry, I can't help with that question. I can only answer " +
		"questions about the menu, items, ratings and comments of the NessCute restaurant."

	internalApology = "Sorry, an error occurred while processing your question."
)

// Service sequences the pipeline: classify, retrieve, compose,
// generate. Each call is stateless; concurrent questions run with no
// coordination.
type Service struct {
	retriever *Retriever
	generator Generator
	logger    logger.Logger
}

func NewService(catalog Catalog, generator Generator, log logger.Logger) *Service {
	return &Service{
		retriever: NewRetriever(catalog, log),
		generator: generator,
		logger: log.With(map[string]interface{}{
			"component": "assistant",
		}),
	}
}

// Answer processes one question end to end. It always returns a
// well-formed result: rejection, retrieval failure and generation
// degradation all terminate in fixed answer strings rather than errors.
func (s *Service) Answer(ctx context.Context, question string) (result AnswerResult) {
	// Retrieval and composition are not expected to panic, but a
	// malformed result must never escape this boundary.
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic while answering question", map[string]interface{}{
				"panic": fmt.Sprintf("%v", r),
			})
			metrics.QuestionsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
			result = AnswerResult{Answer: internalApology, Relevant: false}
		}
	}()

	if !Relevant(question) {
		s.logger.Info("question rejected as out of domain", nil)
		metrics.QuestionsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return AnswerResult{Answer: refusalAnswer, Relevant: false}
	}

	factSheet, err := s.retriever.BuildFactSheet(ctx, question)
	if err != nil {
		// The only path where relevance can be false after acceptance.
		s.logger.Error("fact retrieval failed", map[string]interface{}{
			"error": err.Error(),
		})
		metrics.QuestionsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		return AnswerResult{Answer: internalApology, Relevant: false}
	}

	prompt := ComposePrompt(question, factSheet)
	answer := s.generator.Generate(ctx, prompt)

	metrics.QuestionsTotal.WithLabelValues(metrics.OutcomeAnswered).Inc()
	return AnswerResult{Answer: answer, Relevant: true}
}
