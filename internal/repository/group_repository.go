package repository

import (
	"context"

	"vlearn-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type GroupChatRepository struct {
	Col *mongo.Collection
}

func NewGroupChatRepository(db *mongo.Database) *GroupChatRepository {
	return &GroupChatRepository{Col: db.Collection("group_chats")}
}

func (r *GroupChatRepository) Create(ctx context.Context, group *models.GroupChat) error {
	res, err := r.Col.InsertOne(ctx, group)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		group.ID = oid.Hex()
	}
	return nil
}

func (r *GroupChatRepository) FindByMember(ctx context.Context, userID string) ([]models.GroupChat, error) {
	cursor, err := r.Col.Find(ctx, bson.M{"members": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []models.GroupChat
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *GroupChatRepository) FindByID(ctx context.Context, id string) (*models.GroupChat, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var group models.GroupChat
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&group)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

type StudyGroupRepository struct {
	Col *mongo.Collection
}

func NewStudyGroupRepository(db *mongo.Database) *StudyGroupRepository {
	return &StudyGroupRepository{Col: db.Collection("study_groups")}
}

func (r *StudyGroupRepository) Create(ctx context.Context, group *models.StudyGroup) error {
	res, err := r.Col.InsertOne(ctx, group)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		group.ID = oid.Hex()
	}
	return nil
}

func (r *StudyGroupRepository) FindByMember(ctx context.Context, userID string) ([]models.StudyGroup, error) {
	cursor, err := r.Col.Find(ctx, bson.M{"members": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []models.StudyGroup
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}
