package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"vlearn-backend/internal/service"
	"vlearn-backend/utils"
)

type SettingsHandler struct {
	settings *service.SettingsService
}

func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	raw, err := h.settings.GetSettings(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load settings", err)
		return
	}
	if raw == "" {
		utils.SuccessResponse(c, "Settings retrieved", gin.H{})
		return
	}
	utils.SuccessResponse(c, "Settings retrieved", json.RawMessage(raw))
}

func (h *SettingsHandler) Put(c *gin.Context) {
	var payload json.RawMessage
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.BadRequestResponse(c, "Settings must be a JSON document")
		return
	}

	if err := h.settings.PutSettings(c.Request.Context(), currentUserID(c), string(payload)); err != nil {
		utils.InternalErrorResponse(c, "Failed to save settings", err)
		return
	}
	utils.SuccessResponse(c, "Settings saved", nil)
}

func (h *SettingsHandler) WipeData(c *gin.Context) {
	if err := h.settings.WipeData(c.Request.Context(), currentUserID(c)); err != nil {
		utils.InternalErrorResponse(c, "Failed to clear learning data", err)
		return
	}
	utils.SuccessResponse(c, "Learning data cleared", nil)
}
