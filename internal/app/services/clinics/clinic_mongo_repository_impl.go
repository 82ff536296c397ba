package clinics

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/r-weda/my-afya-link/internal/app/contracts"
	"github.com/r-weda/my-afya-link/internal/app/models"
	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
	"github.com/r-weda/my-afya-link/internal/pkg/exceptions"
)

type ClinicMongoRepository struct {
	Collection *mongo.Collection
}

func NewClinicMongoRepository(db *mongo.Client, dbName string) contracts.ClinicRepository {
	return &ClinicMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionClinics),
	}
}

func (r *ClinicMongoRepository) FindAllClinics(ctx context.Context, city string) ([]models.Clinic, error) {
	filter := bson.M{}
	if city != "" {
		filter["city"] = city
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var clinics []models.Clinic
	if err := cursor.All(ctx, &clinics); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return clinics, nil
}

func (r *ClinicMongoRepository) FindClinicByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	var clinic models.Clinic
	err := r.Collection.FindOne(ctx, bson.M{"_id": clinicID}).Decode(&clinic)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &clinic, nil
}
