package cleanerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tidybee/config"
	"tidybee/database"
	"tidybee/models"
)

// MongoCleanerRepo implements CleanerRepository using MongoDB.
type MongoCleanerRepo struct {
	coll *mongo.Collection
}

// NewMongoCleanerRepo creates a new instance of CleanerRepository using MongoDB.
func NewMongoCleanerRepo() CleanerRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("cleaners")
	return &MongoCleanerRepo{coll: coll}
}

func (r *MongoCleanerRepo) GetRateCard(id string) (*models.CleanerRateCard, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var cleaner models.Cleaner
	filter := bson.M{"id": id}
	projection := bson.M{"id": 1, "rateCard": 1}
	err := r.coll.FindOne(ctx, filter, options.FindOne().SetProjection(projection)).Decode(&cleaner)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cleaner with id %s: %w", id, err)
	}
	return cleaner.RateCard, nil
}
