package handlers

import (
	"github.com/gin-gonic/gin"

	"vlearn-backend/internal/service"
	"vlearn-backend/utils"
)

type NoteHandler struct {
	notes *service.NoteService
}

func NewNoteHandler(notes *service.NoteService) *NoteHandler {
	return &NoteHandler{notes: notes}
}

type noteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (h *NoteHandler) Create(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	note, err := h.notes.CreateNote(c.Request.Context(), currentUserID(c), req.Title, req.Content)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	utils.CreatedResponse(c, "Note created", note)
}

func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.notes.ListNotes(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list notes", err)
		return
	}
	utils.SuccessResponse(c, "Notes retrieved", notes)
}

func (h *NoteHandler) Update(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.notes.UpdateNote(c.Request.Context(), currentUserID(c), c.Param("id"), req.Title, req.Content); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, "Note updated", nil)
}

func (h *NoteHandler) Delete(c *gin.Context) {
	if err := h.notes.DeleteNote(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		utils.NotFoundResponse(c, "Note not found")
		return
	}
	utils.SuccessResponse(c, "Note deleted", nil)
}
