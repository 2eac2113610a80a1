package repository

import (
	"context"
	"time"

	"vlearn-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NoteRepository struct {
	Col *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *NoteRepository {
	return &NoteRepository{Col: db.Collection("notes")}
}

func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	res, err := r.Col.InsertOne(ctx, note)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		note.ID = oid.Hex()
	}
	return nil
}

func (r *NoteRepository) FindByUser(ctx context.Context, userID string) ([]models.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notes []models.Note
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NoteRepository) FindByID(ctx context.Context, id string) (*models.Note, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var note models.Note
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&note)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepository) Update(ctx context.Context, id string, title, content string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{
		"title":      title,
		"content":    content,
		"updated_at": time.Now(),
	}}
	_, err = r.Col.UpdateOne(ctx, bson.M{"_id": objID}, update)
	return err
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
