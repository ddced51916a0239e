package handler

import (
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-tracker-api/internal/service"
	"github.com/BuzzLyutic/task-tracker-api/pkg/respond"
)

const apiVersion = "1.0.0"

// SystemHandler обслуживает health/status пробы
type SystemHandler struct {
	client  *mongo.Client
	service *service.TaskService
	logger  *zap.Logger
}

func NewSystemHandler(client *mongo.Client, srv *service.TaskService, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{
		client:  client,
		service: srv,
		logger:  logger,
	}
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.client.Ping(r.Context(), readpref.Primary()); err != nil {
		h.logger.Error("health check failed", zap.Error(err))
		respond.JSON(w, r, http.StatusServiceUnavailable, map[string]string{
			"status":    "unhealthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"database":  "disconnected",
		})
		return
	}

	respond.JSON(w, r, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  "connected",
		"version":   apiVersion,
	})
}

func (h *SystemHandler) Status(w http.ResponseWriter, r *http.Request) {
	total, err := h.service.Count(r.Context())
	if err != nil {
		h.logger.Error("status check failed", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond.JSON(w, r, http.StatusOK, map[string]interface{}{
		"service":     "Task Tracker API",
		"status":      "running",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"total_tasks": total,
	})
}
