package handlers

import (
	"github.com/gin-gonic/gin"

	"vlearn-backend/internal/assistant"
	"vlearn-backend/internal/service"
	"vlearn-backend/utils"
)

// AssistantHandler answers chat messages with canned responses and action
// buttons derived from the user's own courses.
type AssistantHandler struct {
	courses *service.CourseService
}

func NewAssistantHandler(courses *service.CourseService) *AssistantHandler {
	return &AssistantHandler{courses: courses}
}

type assistantRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *AssistantHandler) Message(c *gin.Context) {
	var req assistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	courses, err := h.courses.ListCourses(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load courses", err)
		return
	}

	utils.SuccessResponse(c, "Assistant reply", assistant.Interpret(req.Message, courses))
}
