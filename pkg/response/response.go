// Package response maps internal results and named errors onto the HTTP
// transport. Error bodies are always {httpCode, code, message}; success
// bodies are the raw value.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success writes value as the JSON body with the given status code. A nil
// value writes the status only.
func Success(c *gin.Context, statusCode int, value any) {
	if value == nil {
		c.Status(statusCode)
		return
	}
	c.JSON(statusCode, value)
}

// OK sends 200 with value.
func OK(c *gin.Context, value any) {
	Success(c, http.StatusOK, value)
}

// Created sends 201 with value.
func Created(c *gin.Context, value any) {
	Success(c, http.StatusCreated, value)
}

// NoContent sends 204 with an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error writes an HTTPError and aborts the handler chain.
func Error(c *gin.Context, httpErr HTTPError) {
	c.AbortWithStatusJSON(httpErr.HTTPCode, httpErr)
}

// MappedError classifies err through the mapping table and writes the result.
func MappedError(c *gin.Context, err error) {
	Error(c, MapToHTTPError(err))
}
