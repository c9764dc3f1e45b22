package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdesk/pkg/response"
)

// maxBodyBytes caps how much of a request body is buffered for the JSON gate.
const maxBodyBytes = 1 << 20

// RequireJSONBody rejects any POST/PUT request whose body is not a JSON
// object or array, with application code 1008, before any route logic runs.
// The body is re-buffered so downstream handlers can still bind it.
func (m Middleware) RequireJSONBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut {
			c.Next()
			return
		}

		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
		if err != nil {
			response.Error(c, response.DataNotJSON())
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		if !isJSONObject(body) {
			response.Error(c, response.DataNotJSON())
			return
		}

		c.Next()
	}
}

// isJSONObject reports whether data parses as a JSON object or array.
// Bare scalars ("1234", "false") parse but are not acceptable bodies.
func isJSONObject(data []byte) bool {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return false
	}
	switch parsed.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}
