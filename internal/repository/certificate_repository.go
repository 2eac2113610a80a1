package repository

import (
	"context"

	"vlearn-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CertificateRepository struct {
	Col *mongo.Collection
}

func NewCertificateRepository(db *mongo.Database) *CertificateRepository {
	return &CertificateRepository{Col: db.Collection("certificates")}
}

func (r *CertificateRepository) Create(ctx context.Context, cert *models.Certificate) error {
	res, err := r.Col.InsertOne(ctx, cert)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		cert.ID = oid.Hex()
	}
	return nil
}

func (r *CertificateRepository) FindByUser(ctx context.Context, userID string) ([]models.Certificate, error) {
	opts := options.Find().SetSort(bson.D{{Key: "issued_at", Value: -1}})
	cursor, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var certs []models.Certificate
	if err := cursor.All(ctx, &certs); err != nil {
		return nil, err
	}
	return certs, nil
}

func (r *CertificateRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
