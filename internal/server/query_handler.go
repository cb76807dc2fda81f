// internal/server/query_handler.go
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"

	"nesscute-assistant/internal/common/errors"
)

// querySchema validates the inbound query payload before the pipeline
// sees it.
const querySchema = `{
	"type": "object",
	"properties": {
		"question": {
			"type": "string",
			"minLength": 1,
			"maxLength": 2000
		}
	},
	"required": ["question"],
	"additionalProperties": false
}`

var queryShape = gojsonschema.NewStringLoader(querySchema)

type queryRequest struct {
	Question string `json:"question"`
}

func (s *Server) handleQuery(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable request body"})
		return
	}

	validation, err := gojsonschema.Validate(queryShape, gojsonschema.NewBytesLoader(body))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body is not valid JSON"})
		return
	}
	if !validation.Valid() {
		details := make([]string, 0, len(validation.Errors()))
		for _, desc := range validation.Errors() {
			details = append(details, desc.String())
		}
		stdErr := errors.NewInvalidRequestError("query payload rejected")
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   stdErr.Message,
			"code":    stdErr.Code,
			"details": details,
		})
		return
	}

	// Schema validation already consumed the body; decode the buffered
	// copy instead of rebinding the request.
	var req queryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed query payload"})
		return
	}

	start := time.Now()
	result := s.service.Answer(c.Request.Context(), req.Question)

	s.logger.Info("question answered", map[string]interface{}{
		"requestId":  c.GetString(requestIDKey),
		"relevant":   result.Relevant,
		"durationMs": time.Since(start).Milliseconds(),
	})

	c.JSON(http.StatusOK, result)
}
