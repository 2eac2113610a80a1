package service

import (
	"context"
	"strconv"
	"testing"

	"vlearn-backend/internal/models"
	"vlearn-backend/internal/realtime"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeMessageStore struct {
	messages []models.Message
}

func (s *fakeMessageStore) Create(ctx context.Context, msg *models.Message) error {
	msg.ID = "msg" + strconv.Itoa(len(s.messages)+1)
	s.messages = append(s.messages, *msg)
	return nil
}

func (s *fakeMessageStore) FindConversation(ctx context.Context, userA, userB string) ([]models.Message, error) {
	var out []models.Message
	for _, m := range s.messages {
		if (m.SenderID == userA && m.ReceiverID == userB) || (m.SenderID == userB && m.ReceiverID == userA) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *fakeMessageStore) FindGroup(ctx context.Context, groupID string) ([]models.Message, error) {
	var out []models.Message
	for _, m := range s.messages {
		if m.GroupID == groupID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *fakeMessageStore) WatchConversation(ctx context.Context, userA, userB string) (realtime.Changes, error) {
	return neverChanges{}, nil
}

func (s *fakeMessageStore) WatchGroup(ctx context.Context, groupID string) (realtime.Changes, error) {
	return neverChanges{}, nil
}

type neverChanges struct{}

func (neverChanges) Next(ctx context.Context) bool {
	<-ctx.Done()
	return false
}

func (neverChanges) Close(ctx context.Context) error { return nil }

type fakeInvitationStore struct {
	invitations map[string]*models.CourseInvitation
}

func newFakeInvitationStore() *fakeInvitationStore {
	return &fakeInvitationStore{invitations: make(map[string]*models.CourseInvitation)}
}

func (s *fakeInvitationStore) Create(ctx context.Context, inv *models.CourseInvitation) error {
	inv.ID = "inv" + strconv.Itoa(len(s.invitations)+1)
	clone := *inv
	s.invitations[inv.ID] = &clone
	return nil
}

func (s *fakeInvitationStore) FindByID(ctx context.Context, id string) (*models.CourseInvitation, error) {
	inv, ok := s.invitations[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *inv
	return &clone, nil
}

func (s *fakeInvitationStore) FindByUser(ctx context.Context, userID string) ([]models.CourseInvitation, error) {
	var out []models.CourseInvitation
	for _, inv := range s.invitations {
		if inv.ToUserID == userID || inv.FromUserID == userID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (s *fakeInvitationStore) UpdateStatus(ctx context.Context, id, status string) error {
	inv, ok := s.invitations[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	inv.Status = status
	return nil
}

type fakeGroupChatStore struct {
	groups map[string]*models.GroupChat
}

func newFakeGroupChatStore() *fakeGroupChatStore {
	return &fakeGroupChatStore{groups: make(map[string]*models.GroupChat)}
}

func (s *fakeGroupChatStore) Create(ctx context.Context, group *models.GroupChat) error {
	group.ID = "group" + strconv.Itoa(len(s.groups)+1)
	clone := *group
	s.groups[group.ID] = &clone
	return nil
}

func (s *fakeGroupChatStore) FindByMember(ctx context.Context, userID string) ([]models.GroupChat, error) {
	var out []models.GroupChat
	for _, g := range s.groups {
		for _, m := range g.Members {
			if m == userID {
				out = append(out, *g)
				break
			}
		}
	}
	return out, nil
}

func (s *fakeGroupChatStore) FindByID(ctx context.Context, id string) (*models.GroupChat, error) {
	group, ok := s.groups[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *group
	return &clone, nil
}

type fakeStudyGroupStore struct {
	groups []models.StudyGroup
}

func (s *fakeStudyGroupStore) Create(ctx context.Context, group *models.StudyGroup) error {
	group.ID = "study" + strconv.Itoa(len(s.groups)+1)
	s.groups = append(s.groups, *group)
	return nil
}

func (s *fakeStudyGroupStore) FindByMember(ctx context.Context, userID string) ([]models.StudyGroup, error) {
	var out []models.StudyGroup
	for _, g := range s.groups {
		for _, m := range g.Members {
			if m == userID {
				out = append(out, g)
				break
			}
		}
	}
	return out, nil
}

type messengerFixture struct {
	svc         *MessengerService
	messages    *fakeMessageStore
	invitations *fakeInvitationStore
	groups      *fakeGroupChatStore
	study       *fakeStudyGroupStore
	courses     *fakeCourseStore
	users       *fakeUserStore
}

func newMessengerFixture(t *testing.T) *messengerFixture {
	t.Helper()
	f := &messengerFixture{
		messages:    &fakeMessageStore{},
		invitations: newFakeInvitationStore(),
		groups:      newFakeGroupChatStore(),
		study:       &fakeStudyGroupStore{},
		courses:     newFakeCourseStore(),
		users:       newFakeUserStore(),
	}
	f.users.users["u1"] = &models.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}
	f.users.users["u2"] = &models.User{ID: "u2", Name: "Bob", Email: "bob@example.com"}
	f.svc = NewMessengerService(f.messages, f.invitations, f.groups, f.study, f.courses, f.users, realtime.NewManager(), nil)
	return f
}

func TestSendTextAndListConversation(t *testing.T) {
	f := newMessengerFixture(t)
	ctx := context.Background()

	msg, err := f.svc.SendText(ctx, "u1", "u2", "", "hello")
	if err != nil {
		t.Fatalf("SendText: %v", err)
	}
	if msg.SenderName != "Ada" || msg.Type != models.MessageText {
		t.Errorf("message = %+v", msg)
	}

	if _, err := f.svc.SendText(ctx, "u2", "u1", "", "hi back"); err != nil {
		t.Fatal(err)
	}

	conversation, err := f.svc.ListConversation(ctx, "u1", "u2")
	if err != nil {
		t.Fatal(err)
	}
	if len(conversation) != 2 {
		t.Errorf("conversation has %d messages, want 2", len(conversation))
	}
}

func TestSendTextValidation(t *testing.T) {
	f := newMessengerFixture(t)
	ctx := context.Background()

	if _, err := f.svc.SendText(ctx, "u1", "u2", "", "   "); err == nil {
		t.Error("expected error for blank content")
	}
	if _, err := f.svc.SendText(ctx, "u1", "", "", "hi"); err == nil {
		t.Error("expected error for no target")
	}
	if _, err := f.svc.SendText(ctx, "u1", "u2", "g1", "hi"); err == nil {
		t.Error("expected error for double target")
	}
}

func TestGroupChatMembership(t *testing.T) {
	f := newMessengerFixture(t)
	ctx := context.Background()

	group, err := f.svc.CreateGroupChat(ctx, "u1", "study buddies", []string{"u2"})
	if err != nil {
		t.Fatalf("CreateGroupChat: %v", err)
	}
	// Creator is always a member.
	if len(group.Members) != 2 {
		t.Errorf("members = %v, want creator included", group.Members)
	}

	if _, err := f.svc.SendText(ctx, "u1", "", group.ID, "welcome"); err != nil {
		t.Fatal(err)
	}

	messages, err := f.svc.ListGroupMessages(ctx, "u2", group.ID)
	if err != nil {
		t.Fatalf("ListGroupMessages: %v", err)
	}
	if len(messages) != 1 {
		t.Errorf("got %d messages, want 1", len(messages))
	}

	if _, err := f.svc.ListGroupMessages(ctx, "outsider", group.ID); err == nil {
		t.Error("expected membership error")
	}
}

func TestRecordCall(t *testing.T) {
	f := newMessengerFixture(t)

	msg, err := f.svc.RecordCall(context.Background(), "u1", "u2", models.CallData{Duration: 0, Status: "missed"})
	if err != nil {
		t.Fatal(err)
	}
	if msg.Type != models.MessageVideoCall || msg.Content != "Missed video call" {
		t.Errorf("message = %+v", msg)
	}
}

func TestCourseInvitationAcceptClonesCourse(t *testing.T) {
	f := newMessengerFixture(t)
	ctx := context.Background()

	f.courses.Create(ctx, &models.Course{
		Title:       "Go Basics",
		Description: "d",
		Topics:      []string{"A", "B"},
		Progress:    60,
		Completed:   true,
		UserID:      "u1",
	})

	inv, err := f.svc.SendCourseInvitation(ctx, "u1", "u2", "course1")
	if err != nil {
		t.Fatalf("SendCourseInvitation: %v", err)
	}
	if inv.Status != models.InvitationPending || inv.CourseName != "Go Basics" {
		t.Errorf("invitation = %+v", inv)
	}

	// The invite shows up as a message in the conversation.
	conversation, _ := f.svc.ListConversation(ctx, "u1", "u2")
	if len(conversation) != 1 || conversation[0].Type != models.MessageCourseInvite {
		t.Fatalf("conversation = %+v", conversation)
	}
	if conversation[0].Invite == nil || conversation[0].Invite.InvitationID != inv.ID {
		t.Errorf("invite data = %+v", conversation[0].Invite)
	}

	updated, err := f.svc.RespondInvitation(ctx, "u2", inv.ID, true)
	if err != nil {
		t.Fatalf("RespondInvitation: %v", err)
	}
	if updated.Status != models.InvitationAccepted {
		t.Errorf("status = %q", updated.Status)
	}

	// The invitee gets a fresh copy with progress reset.
	cloned, err := f.courses.FindByUser(ctx, "u2")
	if err != nil || len(cloned) != 1 {
		t.Fatalf("cloned courses = %v, %v", cloned, err)
	}
	clone := cloned[0]
	if clone.Title != "Go Basics" || clone.Progress != 0 || clone.Completed {
		t.Errorf("clone = %+v", clone)
	}
	if clone.ID == "course1" {
		t.Error("clone reused the original course ID")
	}

	// A second response is rejected.
	if _, err := f.svc.RespondInvitation(ctx, "u2", inv.ID, false); err == nil {
		t.Error("expected error responding to settled invitation")
	}
}

func TestCourseInvitationDecline(t *testing.T) {
	f := newMessengerFixture(t)
	ctx := context.Background()

	f.courses.Create(ctx, &models.Course{Title: "Go", Topics: []string{"A"}, UserID: "u1"})
	inv, err := f.svc.SendCourseInvitation(ctx, "u1", "u2", "course1")
	if err != nil {
		t.Fatal(err)
	}

	updated, err := f.svc.RespondInvitation(ctx, "u2", inv.ID, false)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != models.InvitationDeclined {
		t.Errorf("status = %q", updated.Status)
	}
	if courses, _ := f.courses.FindByUser(ctx, "u2"); len(courses) != 0 {
		t.Errorf("decline cloned a course: %+v", courses)
	}
}

func TestCourseInvitationGuards(t *testing.T) {
	f := newMessengerFixture(t)
	ctx := context.Background()

	f.courses.Create(ctx, &models.Course{Title: "Go", Topics: []string{"A"}, UserID: "u1"})

	// Only the owner can invite.
	if _, err := f.svc.SendCourseInvitation(ctx, "u2", "u1", "course1"); err == nil {
		t.Error("expected ownership error")
	}

	inv, err := f.svc.SendCourseInvitation(ctx, "u1", "u2", "course1")
	if err != nil {
		t.Fatal(err)
	}
	// Only the addressee can respond.
	if _, err := f.svc.RespondInvitation(ctx, "u1", inv.ID, true); err == nil {
		t.Error("expected addressee error")
	}
}

func TestStudyGroups(t *testing.T) {
	f := newMessengerFixture(t)
	ctx := context.Background()

	group, err := f.svc.CreateStudyGroup(ctx, "u1", "Gophers", "weekly sync", "course1", []string{"u2"})
	if err != nil {
		t.Fatalf("CreateStudyGroup: %v", err)
	}
	if len(group.Members) != 2 {
		t.Errorf("members = %v", group.Members)
	}

	forBob, err := f.svc.ListStudyGroups(ctx, "u2")
	if err != nil || len(forBob) != 1 {
		t.Errorf("study groups for member = %v, %v", forBob, err)
	}
	forOutsider, err := f.svc.ListStudyGroups(ctx, "outsider")
	if err != nil || len(forOutsider) != 0 {
		t.Errorf("study groups for outsider = %v, %v", forOutsider, err)
	}
}

func TestListContactsExcludesSelf(t *testing.T) {
	f := newMessengerFixture(t)
	contacts, err := f.svc.ListContacts(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(contacts) != 1 || contacts[0].ID != "u2" {
		t.Errorf("contacts = %+v", contacts)
	}
}
