package profiles

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/r-weda/my-afya-link/internal/app/contracts"
	"github.com/r-weda/my-afya-link/internal/app/models"
	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
	"github.com/r-weda/my-afya-link/internal/pkg/exceptions"
)

type ProfileMongoRepository struct {
	Collection *mongo.Collection
}

func NewProfileMongoRepository(db *mongo.Client, dbName string) contracts.ProfileRepository {
	return &ProfileMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProfiles),
	}
}

func (r *ProfileMongoRepository) FindProfileByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.Collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &profile, nil
}

func (r *ProfileMongoRepository) UpsertProfile(ctx context.Context, profile *models.Profile) error {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"firstName":   profile.FirstName,
			"lastName":    profile.LastName,
			"phoneNumber": profile.PhoneNumber,
			"updatedAt":   now,
		},
		"$setOnInsert": bson.M{
			"userId":    profile.UserID,
			"createdAt": now,
		},
	}

	updateOptions := options.Update().SetUpsert(true)
	_, err := r.Collection.UpdateOne(ctx, bson.M{"userId": profile.UserID}, update, updateOptions)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
