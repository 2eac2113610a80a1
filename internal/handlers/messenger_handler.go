package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"vlearn-backend/internal/models"
	"vlearn-backend/internal/service"
	"vlearn-backend/utils"
)

type MessengerHandler struct {
	messenger *service.MessengerService
}

func NewMessengerHandler(messenger *service.MessengerService) *MessengerHandler {
	return &MessengerHandler{messenger: messenger}
}

type sendMessageRequest struct {
	ReceiverID string            `json:"receiverId"`
	GroupID    string            `json:"groupId"`
	Content    string            `json:"content"`
	Type       string            `json:"type"`
	Voice      *models.VoiceData `json:"voiceData"`
	Call       *models.CallData  `json:"videoCallData"`
}

func (h *MessengerHandler) Send(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	userID := currentUserID(c)
	var (
		msg *models.Message
		err error
	)
	switch req.Type {
	case models.MessageVoice:
		if req.Voice == nil {
			utils.BadRequestResponse(c, "Voice message needs voiceData")
			return
		}
		msg, err = h.messenger.SendVoice(c.Request.Context(), userID, req.ReceiverID, req.GroupID, *req.Voice)
	case models.MessageVideoCall:
		if req.Call == nil {
			utils.BadRequestResponse(c, "Call record needs videoCallData")
			return
		}
		msg, err = h.messenger.RecordCall(c.Request.Context(), userID, req.ReceiverID, *req.Call)
	default:
		msg, err = h.messenger.SendText(c.Request.Context(), userID, req.ReceiverID, req.GroupID, req.Content)
	}
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	utils.CreatedResponse(c, "Message sent", msg)
}

func (h *MessengerHandler) Conversation(c *gin.Context) {
	messages, err := h.messenger.ListConversation(c.Request.Context(), currentUserID(c), c.Param("peerId"))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load conversation", err)
		return
	}
	utils.SuccessResponse(c, "Conversation retrieved", messages)
}

func (h *MessengerHandler) GroupMessages(c *gin.Context) {
	messages, err := h.messenger.ListGroupMessages(c.Request.Context(), currentUserID(c), c.Param("groupId"))
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, "Group messages retrieved", messages)
}

// StreamConversation pushes the full conversation over SSE after every new
// message. Opening a second stream for the same conversation replaces the
// first.
func (h *MessengerHandler) StreamConversation(c *gin.Context) {
	userID := currentUserID(c)
	peerID := c.Param("peerId")

	updates := make(chan []models.Message, 1)
	ctx := c.Request.Context()

	err := h.messenger.StreamConversation(ctx, userID, peerID, func(messages []models.Message) {
		select {
		case updates <- messages:
		case <-ctx.Done():
		}
	})
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to open conversation stream", err)
		return
	}

	c.Stream(func(w io.Writer) bool {
		select {
		case messages := <-updates:
			c.SSEvent("messages", messages)
			return true
		case <-ctx.Done():
			return false
		}
	})
}

// StreamGroup is StreamConversation for a group chat.
func (h *MessengerHandler) StreamGroup(c *gin.Context) {
	userID := currentUserID(c)
	groupID := c.Param("groupId")

	updates := make(chan []models.Message, 1)
	ctx := c.Request.Context()

	err := h.messenger.StreamGroup(ctx, userID, groupID, func(messages []models.Message) {
		select {
		case updates <- messages:
		case <-ctx.Done():
		}
	})
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	c.Stream(func(w io.Writer) bool {
		select {
		case messages := <-updates:
			c.SSEvent("messages", messages)
			return true
		case <-ctx.Done():
			return false
		}
	})
}

func (h *MessengerHandler) Contacts(c *gin.Context) {
	contacts, err := h.messenger.ListContacts(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list contacts", err)
		return
	}
	utils.SuccessResponse(c, "Contacts retrieved", contacts)
}

type createGroupRequest struct {
	Name    string   `json:"name" binding:"required"`
	Members []string `json:"members"`
}

func (h *MessengerHandler) CreateGroup(c *gin.Context) {
	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	group, err := h.messenger.CreateGroupChat(c.Request.Context(), currentUserID(c), req.Name, req.Members)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	utils.CreatedResponse(c, "Group created", group)
}

func (h *MessengerHandler) ListGroups(c *gin.Context) {
	groups, err := h.messenger.ListGroupChats(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list groups", err)
		return
	}
	utils.SuccessResponse(c, "Groups retrieved", groups)
}

type createStudyGroupRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	CourseID    string   `json:"courseId"`
	Members     []string `json:"members"`
}

func (h *MessengerHandler) CreateStudyGroup(c *gin.Context) {
	var req createStudyGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	group, err := h.messenger.CreateStudyGroup(c.Request.Context(), currentUserID(c), req.Name, req.Description, req.CourseID, req.Members)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	utils.CreatedResponse(c, "Study group created", group)
}

func (h *MessengerHandler) ListStudyGroups(c *gin.Context) {
	groups, err := h.messenger.ListStudyGroups(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list study groups", err)
		return
	}
	utils.SuccessResponse(c, "Study groups retrieved", groups)
}

type inviteRequest struct {
	ToUserID string `json:"toUserId" binding:"required"`
	CourseID string `json:"courseId" binding:"required"`
}

func (h *MessengerHandler) SendInvitation(c *gin.Context) {
	var req inviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	inv, err := h.messenger.SendCourseInvitation(c.Request.Context(), currentUserID(c), req.ToUserID, req.CourseID)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	utils.CreatedResponse(c, "Invitation sent", inv)
}

func (h *MessengerHandler) ListInvitations(c *gin.Context) {
	invitations, err := h.messenger.ListInvitations(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list invitations", err)
		return
	}
	utils.SuccessResponse(c, "Invitations retrieved", invitations)
}

type respondInvitationRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}

func (h *MessengerHandler) RespondInvitation(c *gin.Context) {
	var req respondInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	inv, err := h.messenger.RespondInvitation(c.Request.Context(), currentUserID(c), c.Param("id"), *req.Accept)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, "Invitation updated", inv)
}
