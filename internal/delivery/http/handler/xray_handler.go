package handler

import (
	"encoding/json"
	"net/http"

	"smilehub-server/config"
	"smilehub-server/pkg/response"

	"github.com/sirupsen/logrus"
)

// XrayHandler is the boundary to the external X-ray analysis service. The
// analysis itself is not implemented; only the health probe talks to the
// service.
type XrayHandler struct {
	cfg    config.AIConfig
	log    *logrus.Logger
	client *http.Client
}

func NewXrayHandler(cfg config.AIConfig, log *logrus.Logger) *XrayHandler {
	return &XrayHandler{
		cfg: cfg,
		log: log,
		client: &http.Client{
			Timeout: cfg.HealthTimeout,
		},
	}
}

// Analyze is a stub for the upcoming AI X-ray analysis integration
// @Summary Analyze a dental X-ray (coming soon)
// @Tags Xray
// @Produce json
// @Failure 503 {object} response.Response
// @Router /analyze-xray [post]
func (h *XrayHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	response.Error(w, http.StatusServiceUnavailable, "X-ray analysis is coming soon", nil)
}

// ServiceHealth probes the external AI service
// @Summary Check AI service availability
// @Tags Xray
// @Produce json
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /ai-service/health [get]
func (h *XrayHandler) ServiceHealth(w http.ResponseWriter, r *http.Request) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, h.cfg.ServiceURL+"/health", nil)
	if err != nil {
		response.Error(w, http.StatusServiceUnavailable, "AI service not available", nil)
		return
	}

	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Warnf("AI service health check failed: %+v", err)
		response.Error(w, http.StatusServiceUnavailable, "AI service not available", nil)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		response.Error(w, http.StatusServiceUnavailable, "AI service not available", nil)
		return
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		body = nil
	}

	response.Success(w, http.StatusOK, "AI service healthy", map[string]interface{}{
		"service_url": h.cfg.ServiceURL,
		"ai_service":  body,
	})
}
