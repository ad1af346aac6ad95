// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Package api exposes the dataset search and statistics operations as a
// small synchronous JSON API.
//
// Every endpoint answers with a uniform envelope:
//
//	{"success": true,  "data": ..., "count": ...}
//	{"success": false, "error": "..."}
//
// Internal faults never escape a handler; they are recovered and reported
// as a generic failure envelope with status 500.
package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/gitdot5/excavator-pin-dimensions/pkg/logging"
	"github.com/gitdot5/excavator-pin-dimensions/services/dataset"
)

// ServiceVersion is the query API version.
const ServiceVersion = "0.1.0"

// Config configures the API server.
type Config struct {
	// Port is the listen port. Default: 5000
	Port int

	// DefaultLimit caps GET /api/excavators responses when the client
	// does not pass a limit. Default: 100
	DefaultLimit int
}

// DefaultConfig returns a Config with the standard port and result limit.
func DefaultConfig() Config {
	return Config{Port: 5000, DefaultLimit: 100}
}

// Validate clamps out-of-range values to their defaults.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		c.Port = 5000
	}
	if c.DefaultLimit <= 0 {
		c.DefaultLimit = 100
	}
	return nil
}

// Server serves the query API over a dataset store. The store's table is
// read once per request; a concurrent reload swaps the table pointer whole,
// so in-flight requests keep a consistent view.
type Server struct {
	store    *dataset.Store
	logger   *logging.Logger
	validate *validator.Validate
	config   Config
	engine   *gin.Engine
}

// NewServer creates a Server over the given store.
func NewServer(store *dataset.Store, logger *logging.Logger, config Config) *Server {
	if logger == nil {
		logger = logging.Default()
	}
	_ = config.Validate()

	s := &Server{
		store:    store,
		logger:   logger,
		validate: validator.New(),
		config:   config,
	}

	engine := gin.New()
	engine.Use(requestIDMiddleware())
	engine.Use(gin.CustomRecovery(s.handlePanic))

	api := engine.Group("/api")
	{
		api.GET("/excavators", s.handleListExcavators)
		api.GET("/manufacturers", s.handleManufacturers)
		api.GET("/statistics", s.handleStatistics)
		api.POST("/search", s.handleSearch)
		api.GET("/health", s.handleHealth)
	}

	s.engine = engine
	return s
}

// Engine exposes the router, primarily for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves the API on the configured port, blocking until the listener
// fails or the process ends.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	s.logger.Info("starting API server", "addr", addr, "version", ServiceVersion)
	if err := s.engine.Run(addr); err != nil {
		s.logger.Error("API server stopped", "error", err.Error())
		return fmt.Errorf("serve api: %w", err)
	}
	return nil
}
