package handler

import (
	"net/http"
	"time"

	"smilehub-server/pkg/response"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db          *gorm.DB
	redisClient *redis.Client
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		db:          db,
		redisClient: redisClient,
	}
}

// Check reports service health, probing the database and Redis
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /health [get]
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  "connected",
		"redis":     "connected",
	}
	healthy := true

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(r.Context()) != nil {
		status["database"] = "disconnected"
		healthy = false
	}

	if err := h.redisClient.Ping(r.Context()).Err(); err != nil {
		status["redis"] = "disconnected"
		healthy = false
	}

	if !healthy {
		response.Error(w, http.StatusServiceUnavailable, "unhealthy", status)
		return
	}

	response.Success(w, http.StatusOK, "healthy", status)
}
