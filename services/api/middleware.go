// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gitdot5/excavator-pin-dimensions/pkg/logging"
)

const (
	headerRequestID  = "X-Request-ID"
	contextRequestID = "request_id"
)

// requestIDMiddleware assigns every request an ID, honoring a
// client-provided X-Request-ID header.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(contextRequestID, id)
		c.Writer.Header().Set(headerRequestID, id)
		c.Next()
	}
}

// requestLogger derives a child logger scoped to the current request.
func (s *Server) requestLogger(c *gin.Context, handler string) *logging.Logger {
	return s.logger.With(contextRequestID, c.GetString(contextRequestID), "handler", handler)
}

// handlePanic converts a recovered panic into the uniform error envelope.
// The cause is logged, never leaked to the client.
func (s *Server) handlePanic(c *gin.Context, recovered any) {
	s.logger.Error("handler panic",
		contextRequestID, c.GetString(contextRequestID),
		"path", c.Request.URL.Path,
		"panic", recovered)
	c.AbortWithStatusJSON(http.StatusInternalServerError, failure("internal server error"))
}
