package clientRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tidybee/config"
	"tidybee/database"
	"tidybee/models"
)

// MongoClientRepo implements ClientRepository using MongoDB.
type MongoClientRepo struct {
	clients  *mongo.Collection
	bookings *mongo.Collection
}

// NewMongoClientRepo creates a new instance of ClientRepository using MongoDB.
func NewMongoClientRepo() ClientRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoClientRepo{
		clients:  db.Collection("clients"),
		bookings: db.Collection("bookings"),
	}
}

func (r *MongoClientRepo) GetPricingContext(id string) (*models.ClientContext, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var client models.Client
	err := r.clients.FindOne(ctx, bson.M{"id": id}).Decode(&client)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client with id %s: %w", id, err)
	}

	count, err := r.bookings.CountDocuments(ctx, bson.M{"clientId": id})
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings for client %s: %w", id, err)
	}

	membership := client.Membership
	if membership != nil && !membership.Active {
		membership = nil
	}

	return &models.ClientContext{
		ClientID:     client.ID,
		BookingCount: count,
		Membership:   membership,
	}, nil
}
