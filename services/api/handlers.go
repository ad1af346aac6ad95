// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gitdot5/excavator-pin-dimensions/services/dataset"
)

// handleListExcavators handles GET /api/excavators.
//
// Query parameters map 1:1 to search criteria (manufacturer, model,
// pin_diameter_min, pin_diameter_max, data_source) plus a result limit
// defaulting to 100. An unloaded store yields an empty result set, not an
// error.
func (s *Server) handleListExcavators(c *gin.Context) {
	logger := s.requestLogger(c, "handleListExcavators")

	var criteria dataset.Criteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		logger.Warn("invalid query parameters", "error", err.Error())
		respondError(c, http.StatusBadRequest, "invalid query parameters")
		return
	}
	if msg := s.checkCriteria(criteria); msg != "" {
		logger.Warn("rejected criteria", "reason", msg)
		respondError(c, http.StatusBadRequest, msg)
		return
	}

	limit := s.config.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			logger.Warn("invalid limit", "limit", raw)
			respondError(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	results := dataset.Search(s.store.Table(), criteria).Head(limit)
	logger.Debug("search complete", "matches", results.NumRows())
	respondData(c, results.Records(), results.NumRows())
}

// handleManufacturers handles GET /api/manufacturers: the distinct
// manufacturer names, sorted ascending.
func (s *Server) handleManufacturers(c *gin.Context) {
	logger := s.requestLogger(c, "handleManufacturers")

	table := s.store.Table()
	if table == nil {
		logger.Warn("no data loaded")
		respondError(c, http.StatusBadRequest, "No data loaded")
		return
	}

	manufacturers := table.Distinct(dataset.ColumnManufacturer)
	respondData(c, manufacturers, len(manufacturers))
}

// handleStatistics handles GET /api/statistics.
func (s *Server) handleStatistics(c *gin.Context) {
	logger := s.requestLogger(c, "handleStatistics")

	stats, err := dataset.ComputeStatistics(s.store.Table())
	if err != nil {
		logger.Warn("statistics unavailable", "error", err.Error())
		respondError(c, http.StatusBadRequest, "No data loaded")
		return
	}
	respondOK(c, stats)
}

// handleSearch handles POST /api/search: the request body is passed
// through as search criteria. Unknown body keys are ignored; results are
// not limited.
func (s *Server) handleSearch(c *gin.Context) {
	logger := s.requestLogger(c, "handleSearch")

	var criteria dataset.Criteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		logger.Warn("invalid request body", "error", err.Error())
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := s.checkCriteria(criteria); msg != "" {
		logger.Warn("rejected criteria", "reason", msg)
		respondError(c, http.StatusBadRequest, msg)
		return
	}

	results := dataset.Search(s.store.Table(), criteria)
	logger.Debug("search complete", "matches", results.NumRows())
	respondData(c, results.Records(), results.NumRows())
}

// handleHealth handles GET /api/health.
func (s *Server) handleHealth(c *gin.Context) {
	records := 0
	loaded := false
	if table := s.store.Table(); table != nil {
		records = table.NumRows()
		loaded = true
	}
	respondOK(c, gin.H{
		"status":  "healthy",
		"version": ServiceVersion,
		"loaded":  loaded,
		"records": records,
	})
}

// checkCriteria validates criteria at the facade boundary before they
// reach the search engine. Returns a client-facing message, or "" when the
// criteria are acceptable.
func (s *Server) checkCriteria(criteria dataset.Criteria) string {
	if err := s.validate.Struct(&criteria); err != nil {
		return "pin diameter bounds must be non-negative"
	}
	if criteria.PinDiameterMin != nil && criteria.PinDiameterMax != nil &&
		*criteria.PinDiameterMin > *criteria.PinDiameterMax {
		return "pin_diameter_min cannot exceed pin_diameter_max"
	}
	return ""
}
