package models

import "time"

const (
	ActivityTopicCompleted  = "topic_completed"
	ActivityCourseCompleted = "course_completed"
	ActivityQuizPassed      = "quiz_passed"
)

type Activity struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"user_id" json:"userId"`
	Type       string    `bson:"type" json:"type"`
	Title      string    `bson:"title" json:"title"`
	CourseID   string    `bson:"course_id" json:"courseId"`
	TopicIndex int       `bson:"topic_index" json:"topicIndex"`
	Date       time.Time `bson:"date" json:"date"`
}

type QuizResult struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	UserID         string    `bson:"user_id" json:"userId"`
	CourseID       string    `bson:"course_id" json:"courseId"`
	Score          int       `bson:"score" json:"score"` // percentage 0-100
	CorrectCount   int       `bson:"correct_count" json:"correctCount"`
	TotalQuestions int       `bson:"total_questions" json:"totalQuestions"`
	Passed         bool      `bson:"passed" json:"passed"`
	Date           time.Time `bson:"date" json:"date"`
}

// AnalyticsSummary aggregates a user's learning data for the analytics view.
type AnalyticsSummary struct {
	TotalCourses        int                `json:"totalCourses"`
	CompletedCourses    int                `json:"completedCourses"`
	TotalTopics         int                `json:"totalTopics"`
	CompletedTopics     int                `json:"completedTopics"`
	StudyTime           int                `json:"studyTime"` // minutes
	Certificates        int                `json:"certificates"`
	WeeklyProgress      []int              `json:"weeklyProgress"`
	TopicCompletionRate map[string]float64 `json:"topicCompletionRate"`
	RecentActivity      []Activity         `json:"recentActivity"`
	AverageQuizScore    float64            `json:"averageQuizScore"`
	TotalQuizzesTaken   int                `json:"totalQuizzesTaken"`
}
