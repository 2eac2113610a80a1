package models

import "time"

const (
	MessageText         = "text"
	MessageVoice        = "voice"
	MessageVideoCall    = "video_call"
	MessageCourseInvite = "course_invite"
)

// VoiceData describes an uploaded voice note attached to a message.
type VoiceData struct {
	Duration int    `bson:"duration" json:"duration"` // seconds
	AudioURL string `bson:"audio_url" json:"audioUrl"`
	VoiceID  string `bson:"voice_id" json:"voiceId"`
}

// CallData records the outcome of a call announced in the chat transcript.
type CallData struct {
	Duration int    `bson:"duration" json:"duration"` // seconds
	Status   string `bson:"status" json:"status"`     // "missed" or "completed"
}

// CourseInviteData links an invite message back to its invitation document.
type CourseInviteData struct {
	CourseID     string `bson:"course_id" json:"courseId"`
	CourseName   string `bson:"course_name" json:"courseName"`
	InvitationID string `bson:"invitation_id" json:"invitationId"`
}

// Message is a direct or group chat message. Exactly one of ReceiverID and
// GroupID is set.
type Message struct {
	ID         string            `bson:"_id,omitempty" json:"id"`
	Content    string            `bson:"content" json:"content"`
	SenderID   string            `bson:"sender_id" json:"senderId"`
	SenderName string            `bson:"sender_name" json:"senderName"`
	ReceiverID string            `bson:"receiver_id,omitempty" json:"receiverId,omitempty"`
	GroupID    string            `bson:"group_id,omitempty" json:"groupId,omitempty"`
	Type       string            `bson:"type" json:"type"`
	Voice      *VoiceData        `bson:"voice,omitempty" json:"voiceData,omitempty"`
	Call       *CallData         `bson:"call,omitempty" json:"videoCallData,omitempty"`
	Invite     *CourseInviteData `bson:"invite,omitempty" json:"courseData,omitempty"`
	Timestamp  time.Time         `bson:"timestamp" json:"timestamp"`
}

const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationDeclined = "declined"
)

type CourseInvitation struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	CourseID     string    `bson:"course_id" json:"courseId"`
	CourseName   string    `bson:"course_name" json:"courseName"`
	FromUserID   string    `bson:"from_user_id" json:"fromUserId"`
	FromUserName string    `bson:"from_user_name" json:"fromUserName"`
	ToUserID     string    `bson:"to_user_id" json:"toUserId"`
	Status       string    `bson:"status" json:"status"`
	Timestamp    time.Time `bson:"timestamp" json:"timestamp"`
}

type GroupChat struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Members   []string  `bson:"members" json:"members"`
	Creator   string    `bson:"creator" json:"creator"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

type StudyGroup struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	CourseID    string    `bson:"course_id" json:"courseId"`
	Members     []string  `bson:"members" json:"members"`
	Creator     string    `bson:"creator" json:"creator"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
