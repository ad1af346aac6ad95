// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response shape of every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func failure(msg string) Envelope {
	return Envelope{Success: false, Error: msg}
}

// respondOK writes a success envelope without a count.
func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// respondData writes a success envelope carrying a result count.
func respondData(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Count: &count})
}

// respondError writes a failure envelope with the given status.
func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, failure(msg))
}
