package repository

import (
	"context"

	"vlearn-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ActivityRepository struct {
	Col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{Col: db.Collection("learning_activity")}
}

func (r *ActivityRepository) Append(ctx context.Context, activity *models.Activity) error {
	res, err := r.Col.InsertOne(ctx, activity)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		activity.ID = oid.Hex()
	}
	return nil
}

func (r *ActivityRepository) FindByUser(ctx context.Context, userID string) ([]models.Activity, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *ActivityRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}

type QuizResultRepository struct {
	Col *mongo.Collection
}

func NewQuizResultRepository(db *mongo.Database) *QuizResultRepository {
	return &QuizResultRepository{Col: db.Collection("quiz_results")}
}

func (r *QuizResultRepository) Create(ctx context.Context, result *models.QuizResult) error {
	res, err := r.Col.InsertOne(ctx, result)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		result.ID = oid.Hex()
	}
	return nil
}

func (r *QuizResultRepository) FindByUser(ctx context.Context, userID string) ([]models.QuizResult, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.QuizResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *QuizResultRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
