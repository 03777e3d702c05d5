package mongodb

import (
	"context"
	"time"

	"github.com/lottolabs/lottologic-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DrawRepository is a MongoDB implementation of repositories.DrawRepository
type DrawRepository struct {
	collection *mongo.Collection
}

// NewDrawRepository creates a new DrawRepository
func NewDrawRepository(db *mongo.Database) *DrawRepository {
	collection := db.Collection("draws")

	// Rounds are unique; draws are immutable once cached
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "round", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _ = collection.Indexes().CreateOne(ctx, indexModel)

	return &DrawRepository{collection: collection}
}

// Upsert stores a draw keyed by round. $setOnInsert keeps an already cached
// round untouched.
func (r *DrawRepository) Upsert(ctx context.Context, draw *models.Draw) error {
	if err := draw.Validate(); err != nil {
		return err
	}
	draw.CreatedAt = time.Now()

	filter := bson.M{"round": draw.Round}
	update := bson.M{"$setOnInsert": draw}
	opts := options.Update().SetUpsert(true)

	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// FindByRound retrieves a single draw
func (r *DrawRepository) FindByRound(ctx context.Context, round int) (*models.Draw, error) {
	var draw models.Draw
	err := r.collection.FindOne(ctx, bson.M{"round": round}).Decode(&draw)
	if err != nil {
		return nil, err
	}
	return &draw, nil
}

// FindRecent retrieves up to limit draws, newest round first
func (r *DrawRepository) FindRecent(ctx context.Context, limit int) ([]*models.Draw, error) {
	opts := options.Find().
		SetSort(bson.M{"round": -1}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var draws []*models.Draw
	if err := cursor.All(ctx, &draws); err != nil {
		return nil, err
	}
	return draws, nil
}

// LatestRound returns the highest cached round, or 0 when the cache is empty
func (r *DrawRepository) LatestRound(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.M{"round": -1})

	var draw models.Draw
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&draw)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return draw.Round, nil
}

// Count returns the number of cached draws
func (r *DrawRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
