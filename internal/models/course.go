package models

import "time"

type Course struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Topics      []string  `bson:"topics" json:"topics"`
	Progress    int       `bson:"progress" json:"progress"`
	Completed   bool      `bson:"completed" json:"completed"`
	Icon        string    `bson:"icon" json:"icon"`
	UserID      string    `bson:"user_id" json:"user_id"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// CourseDraft is a generated outline before the user saves it as a course.
type CourseDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
	Icon        string   `json:"icon"`
}

// TopicProgress tracks per-topic completion for one course and user.
// Topic indexes are stored as string keys, mirroring the JSON object
// shape the web client persisted.
type TopicProgress struct {
	ID       string          `bson:"_id,omitempty" json:"id"`
	UserID   string          `bson:"user_id" json:"user_id"`
	CourseID string          `bson:"course_id" json:"course_id"`
	Topics   map[string]bool `bson:"topics" json:"topics"`
}

// CompletedCount returns the number of topics marked complete.
func (tp *TopicProgress) CompletedCount() int {
	n := 0
	for _, done := range tp.Topics {
		if done {
			n++
		}
	}
	return n
}
