package repository

import (
	"context"

	"vlearn-backend/internal/models"
	"vlearn-backend/internal/realtime"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageRepository struct {
	Col *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{Col: db.Collection("messages")}
}

func (r *MessageRepository) Create(ctx context.Context, msg *models.Message) error {
	res, err := r.Col.InsertOne(ctx, msg)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		msg.ID = oid.Hex()
	}
	return nil
}

// FindConversation returns the full direct-message history between two
// users, oldest first.
func (r *MessageRepository) FindConversation(ctx context.Context, userA, userB string) ([]models.Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"sender_id": userA, "receiver_id": userB},
		bson.M{"sender_id": userB, "receiver_id": userA},
	}}
	return r.find(ctx, filter)
}

// FindGroup returns the full message history of a group chat, oldest first.
func (r *MessageRepository) FindGroup(ctx context.Context, groupID string) ([]models.Message, error) {
	return r.find(ctx, bson.M{"group_id": groupID})
}

// WatchConversation opens a change stream over inserts into the direct
// conversation between two users.
func (r *MessageRepository) WatchConversation(ctx context.Context, userA, userB string) (realtime.Changes, error) {
	pipeline := mongo.Pipeline{{{Key: "$match", Value: bson.M{
		"operationType": "insert",
		"$or": bson.A{
			bson.M{"fullDocument.sender_id": userA, "fullDocument.receiver_id": userB},
			bson.M{"fullDocument.sender_id": userB, "fullDocument.receiver_id": userA},
		},
	}}}}
	stream, err := r.Col.Watch(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	return stream, nil
}

// WatchGroup opens a change stream over inserts into a group chat.
func (r *MessageRepository) WatchGroup(ctx context.Context, groupID string) (realtime.Changes, error) {
	pipeline := mongo.Pipeline{{{Key: "$match", Value: bson.M{
		"operationType":         "insert",
		"fullDocument.group_id": groupID,
	}}}}
	stream, err := r.Col.Watch(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	return stream, nil
}

func (r *MessageRepository) find(ctx context.Context, filter bson.M) ([]models.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

type InvitationRepository struct {
	Col *mongo.Collection
}

func NewInvitationRepository(db *mongo.Database) *InvitationRepository {
	return &InvitationRepository{Col: db.Collection("course_invitations")}
}

func (r *InvitationRepository) Create(ctx context.Context, inv *models.CourseInvitation) error {
	res, err := r.Col.InsertOne(ctx, inv)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		inv.ID = oid.Hex()
	}
	return nil
}

func (r *InvitationRepository) FindByID(ctx context.Context, id string) (*models.CourseInvitation, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var inv models.CourseInvitation
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&inv)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// FindByUser returns invitations the user sent or received.
func (r *InvitationRepository) FindByUser(ctx context.Context, userID string) ([]models.CourseInvitation, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"to_user_id": userID},
		bson.M{"from_user_id": userID},
	}}
	cursor, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invitations []models.CourseInvitation
	if err := cursor.All(ctx, &invitations); err != nil {
		return nil, err
	}
	return invitations, nil
}

func (r *InvitationRepository) UpdateStatus(ctx context.Context, id, status string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"status": status}})
	return err
}
