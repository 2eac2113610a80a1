package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"vlearn-backend/internal/event"
	"vlearn-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Stores are narrow interfaces over the Mongo repositories so services can
// be exercised against in-memory fakes.

type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	FindByID(ctx context.Context, id string) (*models.Course, error)
	FindByUser(ctx context.Context, userID string) ([]models.Course, error)
	Update(ctx context.Context, id string, update bson.M) error
	Delete(ctx context.Context, id string) error
}

type ProgressStore interface {
	Find(ctx context.Context, userID, courseID string) (*models.TopicProgress, error)
	SetTopic(ctx context.Context, userID, courseID string, topicIndex int) error
	DeleteByUser(ctx context.Context, userID string) error
}

type ActivityStore interface {
	Append(ctx context.Context, activity *models.Activity) error
	FindByUser(ctx context.Context, userID string) ([]models.Activity, error)
	DeleteByUser(ctx context.Context, userID string) error
}

type QuizResultStore interface {
	Create(ctx context.Context, result *models.QuizResult) error
	FindByUser(ctx context.Context, userID string) ([]models.QuizResult, error)
	DeleteByUser(ctx context.Context, userID string) error
}

type CertificateStore interface {
	Create(ctx context.Context, cert *models.Certificate) error
	FindByUser(ctx context.Context, userID string) ([]models.Certificate, error)
	DeleteByUser(ctx context.Context, userID string) error
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
}

type CourseService struct {
	courses    CourseStore
	progress   ProgressStore
	activities ActivityStore
	results    QuizResultStore
	certs      CertificateStore
	users      UserStore
	publisher  *event.EventPublisher
}

func NewCourseService(
	courses CourseStore,
	progress ProgressStore,
	activities ActivityStore,
	results QuizResultStore,
	certs CertificateStore,
	users UserStore,
	publisher *event.EventPublisher,
) *CourseService {
	return &CourseService{
		courses:    courses,
		progress:   progress,
		activities: activities,
		results:    results,
		certs:      certs,
		users:      users,
		publisher:  publisher,
	}
}

// CreateCourse saves a generated outline as a new course for the user.
func (s *CourseService) CreateCourse(ctx context.Context, userID string, draft *models.CourseDraft) (*models.Course, error) {
	if draft.Title == "" || len(draft.Topics) == 0 {
		return nil, fmt.Errorf("course needs a title and at least one topic")
	}

	course := &models.Course{
		Title:       draft.Title,
		Description: draft.Description,
		Topics:      draft.Topics,
		Icon:        draft.Icon,
		Progress:    0,
		Completed:   false,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to save course: %w", err)
	}

	s.publisher.Publish("course.created", map[string]interface{}{
		"course_id": course.ID,
		"user_id":   userID,
	})
	return course, nil
}

func (s *CourseService) ListCourses(ctx context.Context, userID string) ([]models.Course, error) {
	return s.courses.FindByUser(ctx, userID)
}

// GetCourse fetches one course and verifies ownership.
func (s *CourseService) GetCourse(ctx context.Context, userID, courseID string) (*models.Course, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.UserID != userID {
		return nil, fmt.Errorf("course %s does not belong to user", courseID)
	}
	return course, nil
}

func (s *CourseService) DeleteCourse(ctx context.Context, userID, courseID string) error {
	if _, err := s.GetCourse(ctx, userID, courseID); err != nil {
		return err
	}
	return s.courses.Delete(ctx, courseID)
}

// MarkTopicComplete sets one topic complete (idempotently), re-derives the
// course progress percentage and logs a topic_completed activity.
func (s *CourseService) MarkTopicComplete(ctx context.Context, userID, courseID string, topicIndex int) (*models.Course, error) {
	course, err := s.GetCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if topicIndex < 0 || topicIndex >= len(course.Topics) {
		return nil, fmt.Errorf("topic index %d out of range", topicIndex)
	}

	if err := s.progress.SetTopic(ctx, userID, courseID, topicIndex); err != nil {
		return nil, fmt.Errorf("failed to record topic progress: %w", err)
	}

	progress, err := s.progress.Find(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	// A completed course keeps its force-set 100%; otherwise derive from
	// the topic tally.
	if !course.Completed {
		course.Progress = progress.CompletedCount() * 100 / len(course.Topics)
		if err := s.courses.Update(ctx, courseID, bson.M{"progress": course.Progress}); err != nil {
			return nil, err
		}
	}

	activity := &models.Activity{
		UserID:     userID,
		Type:       models.ActivityTopicCompleted,
		Title:      "Completed: " + course.Topics[topicIndex],
		CourseID:   courseID,
		TopicIndex: topicIndex,
		Date:       time.Now(),
	}
	if err := s.activities.Append(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to log activity: %w", err)
	}

	s.publisher.Publish("topic.completed", map[string]interface{}{
		"course_id":   courseID,
		"user_id":     userID,
		"topic_index": strconv.Itoa(topicIndex),
	})
	return course, nil
}

// MarkCourseComplete flips the course to completed with progress forced to
// 100 regardless of the topic tally, logs the activity and issues a
// certificate. Callers must not assume progress still reflects
// completedTopics/totalTopics afterwards.
func (s *CourseService) MarkCourseComplete(ctx context.Context, userID, courseID string, score int) (*models.Course, error) {
	course, err := s.GetCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	course.Completed = true
	course.Progress = 100
	if err := s.courses.Update(ctx, courseID, bson.M{"completed": true, "progress": 100}); err != nil {
		return nil, err
	}

	activity := &models.Activity{
		UserID:   userID,
		Type:     models.ActivityCourseCompleted,
		Title:    "Completed Course: " + course.Title,
		CourseID: courseID,
		Date:     time.Now(),
	}
	if err := s.activities.Append(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to log activity: %w", err)
	}

	userName := ""
	if user, err := s.users.FindByID(ctx, userID); err == nil {
		userName = user.Name
	}
	cert := &models.Certificate{
		UserID:      userID,
		UserName:    userName,
		CourseID:    courseID,
		CourseTitle: course.Title,
		Score:       score,
		IssuedAt:    time.Now(),
	}
	if err := s.certs.Create(ctx, cert); err != nil {
		return nil, fmt.Errorf("failed to issue certificate: %w", err)
	}

	s.publisher.Publish("course.completed", map[string]interface{}{
		"course_id": courseID,
		"user_id":   userID,
	})
	return course, nil
}

// SubmitQuizResult stores a finished quiz run. A passing score (70% or
// better) completes the course.
func (s *CourseService) SubmitQuizResult(ctx context.Context, userID, courseID string, correct, total int) (*models.QuizResult, error) {
	if total <= 0 {
		return nil, fmt.Errorf("quiz result needs at least one question")
	}

	percent := int(float64(correct)/float64(total)*100 + 0.5)
	passed := float64(correct)/float64(total) >= 0.70

	result := &models.QuizResult{
		UserID:         userID,
		CourseID:       courseID,
		Score:          percent,
		CorrectCount:   correct,
		TotalQuestions: total,
		Passed:         passed,
		Date:           time.Now(),
	}
	if err := s.results.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to save quiz result: %w", err)
	}

	s.publisher.Publish("quiz.submitted", map[string]interface{}{
		"course_id": courseID,
		"user_id":   userID,
		"score":     percent,
	})

	if passed {
		course, err := s.GetCourse(ctx, userID, courseID)
		if err != nil {
			return nil, err
		}
		activity := &models.Activity{
			UserID:   userID,
			Type:     models.ActivityQuizPassed,
			Title:    fmt.Sprintf("Passed Quiz: %s (%d%%)", course.Title, percent),
			CourseID: courseID,
			Date:     time.Now(),
		}
		if err := s.activities.Append(ctx, activity); err != nil {
			return nil, fmt.Errorf("failed to log activity: %w", err)
		}
		if _, err := s.MarkCourseComplete(ctx, userID, courseID, percent); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *CourseService) ListCertificates(ctx context.Context, userID string) ([]models.Certificate, error) {
	return s.certs.FindByUser(ctx, userID)
}
