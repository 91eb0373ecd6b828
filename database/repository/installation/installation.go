package installationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const collectionName = "installations"

// Installation is one browser/device that has opened the site.
type Installation struct {
	InstallationID string    `bson:"installationId"`
	TutorialSeen   bool      `bson:"tutorialSeen"`
	SeenAt         time.Time `bson:"seenAt,omitempty"`
	CreatedAt      time.Time `bson:"createdAt"`
}

// MongoInstallationRepo stores the tutorial flag per installation.
type MongoInstallationRepo struct {
	coll *mongo.Collection
}

func NewMongoInstallationRepo(db *mongo.Database, logger *zap.Logger) *MongoInstallationRepo {
	repo := &MongoInstallationRepo{coll: db.Collection(collectionName)}
	if err := repo.ensureIndexes(); err != nil {
		logger.Error("Failed to create installation indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoInstallationRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "installationId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// HasSeen reports whether the installation was already offered the tour.
func (r *MongoInstallationRepo) HasSeen(ctx context.Context, installationID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var inst Installation
	err := r.coll.FindOne(ctx, bson.M{"installationId": installationID}).Decode(&inst)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load installation: %w", err)
	}
	return inst.TutorialSeen, nil
}

// MarkSeen records that the tour was offered.
func (r *MongoInstallationRepo) MarkSeen(ctx context.Context, installationID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{
		"$set":         bson.M{"tutorialSeen": true, "seenAt": now},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"installationId": installationID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to mark tutorial seen: %w", err)
	}
	return nil
}
