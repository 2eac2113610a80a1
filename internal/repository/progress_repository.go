package repository

import (
	"context"
	"strconv"

	"vlearn-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("topic_progress")}
}

// Find returns the progress document for one user and course, or an empty
// one if none exists yet. Progress documents are created lazily on first
// topic completion.
func (r *ProgressRepository) Find(ctx context.Context, userID, courseID string) (*models.TopicProgress, error) {
	var progress models.TopicProgress
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID, "course_id": courseID}).Decode(&progress)
	if err == mongo.ErrNoDocuments {
		return &models.TopicProgress{UserID: userID, CourseID: courseID, Topics: map[string]bool{}}, nil
	}
	if err != nil {
		return nil, err
	}
	if progress.Topics == nil {
		progress.Topics = map[string]bool{}
	}
	return &progress, nil
}

// SetTopic marks one topic complete. The upsert makes repeated calls
// idempotent.
func (r *ProgressRepository) SetTopic(ctx context.Context, userID, courseID string, topicIndex int) error {
	filter := bson.M{"user_id": userID, "course_id": courseID}
	update := bson.M{"$set": bson.M{"topics." + strconv.Itoa(topicIndex): true}}
	_, err := r.Col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *ProgressRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
