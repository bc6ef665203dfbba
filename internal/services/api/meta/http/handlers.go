// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"wordtrends/internal/core/dataset"
	"wordtrends/internal/core/version"
	"wordtrends/internal/modkit/httpkit"
	perr "wordtrends/internal/platform/errors"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Dataset     *dataset.Dataset
	Now         func() time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	h := &handlers{deps: d}

	httpkit.GetJSON(r, "/health", h.health)
	httpkit.GetJSON(r, "/ready", h.ready)
	httpkit.GetJSON(r, "/version", h.version)
	httpkit.GetJSON(r, "/service", h.service)
	httpkit.GetJSON(r, "/dataset", h.dataset)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"wordtrends-api"`
	Started string `json:"started"  example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"      example:"2025-09-03T13:05:00Z"`
}

// ReadyResponse reports whether the dataset is being served
type ReadyResponse struct {
	Status   string `json:"status"    example:"ok"`
	LoadID   string `json:"load_id"   example:"5f0c7a2e-3d3b-4d8e-9a39-0b0f3f1d6c55"`
	LoadedAt string `json:"loaded_at" example:"2025-09-03T13:00:00Z"`
	Tables   int    `json:"tables"    example:"6"`
	Now      string `json:"now"       example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"wordtrends-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.deps.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe, ok once the dataset is loaded
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Failure 503 {object} httpkit.Envelope "dataset not loaded"
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	d := h.deps.Dataset
	if d == nil {
		return nil, perr.Unavailablef("dataset not loaded")
	}
	return ReadyResponse{
		Status:   "ok",
		LoadID:   d.ID().String(),
		LoadedAt: d.LoadedAt().Format(time.RFC3339),
		Tables:   len(d.Summary().Tables),
		Now:      h.deps.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(h.deps.Now().Sub(h.deps.StartedAt) / time.Second),
	}, nil
}

// swagger:route GET /meta/dataset Meta metaDataset
// @Summary Loaded tables and categories
// @Tags Meta
// @Produce json
// @Success 200 {object} dataset.Summary "ok"
// @Failure 503 {object} httpkit.Envelope "dataset not loaded"
// @Router /meta/dataset [get]
func (h *handlers) dataset(_ *http.Request) (any, error) {
	if h.deps.Dataset == nil {
		return nil, perr.Unavailablef("dataset not loaded")
	}
	return h.deps.Dataset.Summary(), nil
}
