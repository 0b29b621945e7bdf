package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tidybee/config"
	"tidybee/database"
	"tidybee/models"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	rules   *mongo.Collection
	bundles *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoCatalogRepo{
		rules:   db.Collection("pricing_rules"),
		bundles: db.Collection("bundle_offers"),
	}
}

func (r *MongoCatalogRepo) ActiveRules() ([]models.PricingRule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := r.rules.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve active pricing rules: %w", err)
	}
	defer cursor.Close(ctx)

	var rules []models.PricingRule
	for cursor.Next(ctx) {
		var rule models.PricingRule
		if err := cursor.Decode(&rule); err != nil {
			return nil, fmt.Errorf("failed to decode pricing rule: %w", err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (r *MongoCatalogRepo) ActiveBundles() ([]models.BundleOffer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := r.bundles.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve active bundle offers: %w", err)
	}
	defer cursor.Close(ctx)

	var bundles []models.BundleOffer
	for cursor.Next(ctx) {
		var bundle models.BundleOffer
		if err := cursor.Decode(&bundle); err != nil {
			return nil, fmt.Errorf("failed to decode bundle offer: %w", err)
		}
		bundles = append(bundles, bundle)
	}
	return bundles, nil
}
