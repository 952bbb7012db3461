// internal/handlers/logs.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alihanerman/ai-product-explorer/internal/services"
	"github.com/alihanerman/ai-product-explorer/internal/utils"
)

type LogHandler struct {
	aiService *services.AIService
}

func NewLogHandler(aiService *services.AIService) *LogHandler {
	return &LogHandler{aiService: aiService}
}

// GET /logs
func (h *LogHandler) List(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	logs, err := h.aiService.ListLogs(limit)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, gin.H{"logs": logs})
}

// DELETE /logs
func (h *LogHandler) Clear(c *gin.Context) {
	deleted, err := h.aiService.ClearLogs()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": deleted})
}
