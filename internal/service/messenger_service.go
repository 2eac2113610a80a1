package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vlearn-backend/internal/event"
	"vlearn-backend/internal/models"
	"vlearn-backend/internal/realtime"
)

type MessageStore interface {
	Create(ctx context.Context, msg *models.Message) error
	FindConversation(ctx context.Context, userA, userB string) ([]models.Message, error)
	FindGroup(ctx context.Context, groupID string) ([]models.Message, error)
	WatchConversation(ctx context.Context, userA, userB string) (realtime.Changes, error)
	WatchGroup(ctx context.Context, groupID string) (realtime.Changes, error)
}

type InvitationStore interface {
	Create(ctx context.Context, inv *models.CourseInvitation) error
	FindByID(ctx context.Context, id string) (*models.CourseInvitation, error)
	FindByUser(ctx context.Context, userID string) ([]models.CourseInvitation, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type GroupChatStore interface {
	Create(ctx context.Context, group *models.GroupChat) error
	FindByMember(ctx context.Context, userID string) ([]models.GroupChat, error)
	FindByID(ctx context.Context, id string) (*models.GroupChat, error)
}

type StudyGroupStore interface {
	Create(ctx context.Context, group *models.StudyGroup) error
	FindByMember(ctx context.Context, userID string) ([]models.StudyGroup, error)
}

// MessengerService covers direct chat, group chat, call records, study
// groups and course invitations.
type MessengerService struct {
	messages    MessageStore
	invitations InvitationStore
	groups      GroupChatStore
	studyGroups StudyGroupStore
	courses     CourseStore
	users       UserStore
	streams     *realtime.Manager
	publisher   *event.EventPublisher
}

func NewMessengerService(
	messages MessageStore,
	invitations InvitationStore,
	groups GroupChatStore,
	studyGroups StudyGroupStore,
	courses CourseStore,
	users UserStore,
	streams *realtime.Manager,
	publisher *event.EventPublisher,
) *MessengerService {
	return &MessengerService{
		messages:    messages,
		invitations: invitations,
		groups:      groups,
		studyGroups: studyGroups,
		courses:     courses,
		users:       users,
		streams:     streams,
		publisher:   publisher,
	}
}

func (s *MessengerService) senderName(ctx context.Context, userID string) string {
	if user, err := s.users.FindByID(ctx, userID); err == nil {
		return user.Name
	}
	return ""
}

func (s *MessengerService) deliver(ctx context.Context, msg *models.Message) (*models.Message, error) {
	if msg.ReceiverID == "" && msg.GroupID == "" {
		return nil, fmt.Errorf("message needs a receiver or a group")
	}
	if msg.ReceiverID != "" && msg.GroupID != "" {
		return nil, fmt.Errorf("message cannot target both a receiver and a group")
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}
	s.publisher.Publish("message.sent", map[string]interface{}{
		"message_id": msg.ID,
		"sender_id":  msg.SenderID,
		"type":       msg.Type,
	})
	return msg, nil
}

// SendText delivers a plain text message to a user or group.
func (s *MessengerService) SendText(ctx context.Context, senderID, receiverID, groupID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("message content is required")
	}
	return s.deliver(ctx, &models.Message{
		Content:    content,
		SenderID:   senderID,
		SenderName: s.senderName(ctx, senderID),
		ReceiverID: receiverID,
		GroupID:    groupID,
		Type:       models.MessageText,
		Timestamp:  time.Now(),
	})
}

// SendVoice delivers a voice note. The audio itself lives at voice.AudioURL.
func (s *MessengerService) SendVoice(ctx context.Context, senderID, receiverID, groupID string, voice models.VoiceData) (*models.Message, error) {
	return s.deliver(ctx, &models.Message{
		Content:    "Voice message",
		SenderID:   senderID,
		SenderName: s.senderName(ctx, senderID),
		ReceiverID: receiverID,
		GroupID:    groupID,
		Type:       models.MessageVoice,
		Voice:      &voice,
		Timestamp:  time.Now(),
	})
}

// RecordCall appends a call outcome to the transcript.
func (s *MessengerService) RecordCall(ctx context.Context, senderID, receiverID string, call models.CallData) (*models.Message, error) {
	content := "Video call"
	if call.Status == "missed" {
		content = "Missed video call"
	}
	return s.deliver(ctx, &models.Message{
		Content:    content,
		SenderID:   senderID,
		SenderName: s.senderName(ctx, senderID),
		ReceiverID: receiverID,
		Type:       models.MessageVideoCall,
		Call:       &call,
		Timestamp:  time.Now(),
	})
}

func (s *MessengerService) ListConversation(ctx context.Context, userID, peerID string) ([]models.Message, error) {
	return s.messages.FindConversation(ctx, userID, peerID)
}

func (s *MessengerService) ListGroupMessages(ctx context.Context, userID, groupID string) ([]models.Message, error) {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !contains(group.Members, userID) {
		return nil, fmt.Errorf("user is not a member of group %s", groupID)
	}
	return s.messages.FindGroup(ctx, groupID)
}

// StreamConversation subscribes the caller to live updates of a direct
// conversation. After every insert (and once up front) deliver receives the
// full re-queried history. A second subscription for the same pair replaces
// the first.
func (s *MessengerService) StreamConversation(ctx context.Context, userID, peerID string, deliver func([]models.Message)) error {
	key := conversationKey(userID, peerID)
	return s.streams.Subscribe(ctx, key,
		func(ctx context.Context) (realtime.Changes, error) {
			return s.messages.WatchConversation(ctx, userID, peerID)
		},
		func(ctx context.Context) {
			messages, err := s.messages.FindConversation(ctx, userID, peerID)
			if err != nil {
				return
			}
			deliver(messages)
		})
}

// StreamGroup is StreamConversation for a group chat.
func (s *MessengerService) StreamGroup(ctx context.Context, userID, groupID string, deliver func([]models.Message)) error {
	if _, err := s.ListGroupMessages(ctx, userID, groupID); err != nil {
		return err
	}
	key := "group:" + groupID + ":" + userID
	return s.streams.Subscribe(ctx, key,
		func(ctx context.Context) (realtime.Changes, error) {
			return s.messages.WatchGroup(ctx, groupID)
		},
		func(ctx context.Context) {
			messages, err := s.messages.FindGroup(ctx, groupID)
			if err != nil {
				return
			}
			deliver(messages)
		})
}

// WaitConversation blocks until the caller's conversation stream ends.
func (s *MessengerService) WaitConversation(userID, peerID string) {
	s.streams.Wait(conversationKey(userID, peerID))
}

func (s *MessengerService) CancelConversation(userID, peerID string) {
	s.streams.Cancel(conversationKey(userID, peerID))
}

// conversationKey is scoped to the subscriber, so each side of a
// conversation holds its own stream slot.
func conversationKey(userID, peerID string) string {
	return "dm:" + userID + ":" + peerID
}

// ListContacts returns every registered user except the caller.
func (s *MessengerService) ListContacts(ctx context.Context, userID string) ([]models.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	contacts := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.ID != userID {
			contacts = append(contacts, u)
		}
	}
	return contacts, nil
}

func (s *MessengerService) CreateGroupChat(ctx context.Context, creatorID, name string, members []string) (*models.GroupChat, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("group name is required")
	}
	if !contains(members, creatorID) {
		members = append(members, creatorID)
	}
	group := &models.GroupChat{
		Name:      name,
		Members:   members,
		Creator:   creatorID,
		CreatedAt: time.Now(),
	}
	if err := s.groups.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return group, nil
}

func (s *MessengerService) ListGroupChats(ctx context.Context, userID string) ([]models.GroupChat, error) {
	return s.groups.FindByMember(ctx, userID)
}

func (s *MessengerService) CreateStudyGroup(ctx context.Context, creatorID, name, description, courseID string, members []string) (*models.StudyGroup, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("study group name is required")
	}
	if !contains(members, creatorID) {
		members = append(members, creatorID)
	}
	group := &models.StudyGroup{
		Name:        name,
		Description: description,
		CourseID:    courseID,
		Members:     members,
		Creator:     creatorID,
		CreatedAt:   time.Now(),
	}
	if err := s.studyGroups.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create study group: %w", err)
	}
	return group, nil
}

func (s *MessengerService) ListStudyGroups(ctx context.Context, userID string) ([]models.StudyGroup, error) {
	return s.studyGroups.FindByMember(ctx, userID)
}

// SendCourseInvitation records a pending invitation and drops a
// course_invite message into the direct conversation.
func (s *MessengerService) SendCourseInvitation(ctx context.Context, fromUserID, toUserID, courseID string) (*models.CourseInvitation, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.UserID != fromUserID {
		return nil, fmt.Errorf("course %s does not belong to user", courseID)
	}

	inv := &models.CourseInvitation{
		CourseID:     courseID,
		CourseName:   course.Title,
		FromUserID:   fromUserID,
		FromUserName: s.senderName(ctx, fromUserID),
		ToUserID:     toUserID,
		Status:       models.InvitationPending,
		Timestamp:    time.Now(),
	}
	if err := s.invitations.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to save invitation: %w", err)
	}

	_, err = s.deliver(ctx, &models.Message{
		Content:    fmt.Sprintf("Invited you to join \"%s\"", course.Title),
		SenderID:   fromUserID,
		SenderName: inv.FromUserName,
		ReceiverID: toUserID,
		Type:       models.MessageCourseInvite,
		Invite: &models.CourseInviteData{
			CourseID:     courseID,
			CourseName:   course.Title,
			InvitationID: inv.ID,
		},
		Timestamp: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish("invitation.sent", map[string]interface{}{
		"invitation_id": inv.ID,
		"course_id":     courseID,
		"to_user_id":    toUserID,
	})
	return inv, nil
}

func (s *MessengerService) ListInvitations(ctx context.Context, userID string) ([]models.CourseInvitation, error) {
	return s.invitations.FindByUser(ctx, userID)
}

// RespondInvitation accepts or declines a pending invitation. Accepting
// clones the course for the invitee with fresh progress.
func (s *MessengerService) RespondInvitation(ctx context.Context, userID, invitationID string, accept bool) (*models.CourseInvitation, error) {
	inv, err := s.invitations.FindByID(ctx, invitationID)
	if err != nil {
		return nil, err
	}
	if inv.ToUserID != userID {
		return nil, fmt.Errorf("invitation %s is not addressed to user", invitationID)
	}
	if inv.Status != models.InvitationPending {
		return nil, fmt.Errorf("invitation %s was already %s", invitationID, inv.Status)
	}

	status := models.InvitationDeclined
	if accept {
		status = models.InvitationAccepted
	}
	if err := s.invitations.UpdateStatus(ctx, invitationID, status); err != nil {
		return nil, err
	}
	inv.Status = status

	if accept {
		original, err := s.courses.FindByID(ctx, inv.CourseID)
		if err != nil {
			return nil, err
		}
		clone := &models.Course{
			Title:       original.Title,
			Description: original.Description,
			Topics:      original.Topics,
			Icon:        original.Icon,
			Progress:    0,
			Completed:   false,
			UserID:      userID,
			CreatedAt:   time.Now(),
		}
		if err := s.courses.Create(ctx, clone); err != nil {
			return nil, fmt.Errorf("failed to copy course: %w", err)
		}
		s.publisher.Publish("invitation.accepted", map[string]interface{}{
			"invitation_id": invitationID,
			"course_id":     clone.ID,
			"user_id":       userID,
		})
	}
	return inv, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
