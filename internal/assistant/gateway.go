// internal/assistant/gateway.go
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nesscute-assistant/internal/common/logger"
	"nesscute-assistant/internal/common/metrics"
)

const (
	// noAnswerPlaceholder is returned when no parser could extract
	// answer text from the response body. Not an error condition for
	// callers.
	noAnswerPlaceholder = "Sorry, I could not generate an answer."

	// transportApologyPrefix prefixes the degraded answer produced on
	// any transport-level failure.
	transportApologyPrefix = "Sorry, an error occurred while communicating with the AI: "

	// rawScanOffset skips past `"response"` plus the `: "` separator in
	// the raw fallback scan.
	rawScanMarker = `"response"`
	rawScanOffset = 12
)

// GatewayConfig holds the generation backend settings, injected at
// construction rather than read from ambient state.
type GatewayConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Gateway issues one synchronous round-trip per prompt to an
// Ollama-compatible generate endpoint. It never fails outward: both
// transport and parse failures degrade to fixed user-facing strings.
type Gateway struct {
	config GatewayConfig
	client *http.Client
	logger logger.Logger
}

func NewGateway(config GatewayConfig, log logger.Logger) *Gateway {
	return &Gateway{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
		},
		logger: log.With(map[string]interface{}{
			"component": "gateway",
			"model":     config.Model,
		}),
	}
}

// Generate sends the prompt and extracts the answer text. The returned
// string is always usable as a user-facing answer; degraded paths are
// observable through logs and metrics only.
func (g *Gateway) Generate(ctx context.Context, prompt string) string {
	start := time.Now()
	body, err := g.call(ctx, prompt)
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.GenerationRequests.WithLabelValues(metrics.ResultTransport).Inc()
		g.logger.Error("generation call failed", map[string]interface{}{
			"error": err.Error(),
		})
		return transportApologyPrefix + err.Error()
	}

	// Ordered parser strategies: structured field, raw substring scan,
	// fixed placeholder.
	for _, parse := range responseParsers {
		if answer, ok := parse(body); ok {
			metrics.GenerationRequests.WithLabelValues(metrics.ResultOK).Inc()
			return answer
		}
	}

	metrics.GenerationRequests.WithLabelValues(metrics.ResultParse).Inc()
	g.logger.Warn("generation response contained no answer", map[string]interface{}{
		"bodyBytes": len(body),
	})
	return noAnswerPlaceholder
}

// call performs the single blocking round-trip. No retry; cancellation
// only through the caller's context.
func (g *Gateway) call(ctx context.Context, prompt string) ([]byte, error) {
	payload, err := json.Marshal(generationRequest{
		Model:  g.config.Model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.BaseURL+"/api/generate", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return body, nil
}

// responseParser attempts to extract answer text from a response body.
type responseParser func(body []byte) (string, bool)

var responseParsers = []responseParser{
	parseStructuredResponse,
	parseRawResponse,
}

// parseStructuredResponse decodes the body as JSON and takes the
// "response" field.
func parseStructuredResponse(body []byte) (string, bool) {
	var decoded generationResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", false
	}
	if decoded.Response == "" {
		return "", false
	}
	return decoded.Response, true
}

// parseRawResponse is the tolerance path for malformed bodies: locate
// the response marker, skip the separator, take text up to the closing
// quote.
func parseRawResponse(body []byte) (string, bool) {
	text := string(body)

	idx := strings.Index(text, rawScanMarker)
	if idx < 0 {
		return "", false
	}

	start := idx + rawScanOffset
	if start >= len(text) {
		return "", false
	}

	end := strings.IndexByte(text[start:], '"')
	if end <= 0 {
		return "", false
	}

	return text[start : start+end], true
}
