package appointments

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/r-weda/my-afya-link/internal/app/contracts"
	"github.com/r-weda/my-afya-link/internal/app/models"
	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
	"github.com/r-weda/my-afya-link/internal/pkg/exceptions"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	if appointment.ID == "" {
		appointment.ID = uuid.NewString()
	}
	now := time.Now()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	_, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return appointment.ID, nil
}

func (r *AppointmentMongoRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, bson.M{"_id": appointmentID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindAppointmentsByUserID(ctx context.Context, userID string) ([]models.Appointment, error) {
	findOptions := options.Find().SetSort(bson.D{
		{Key: "appointmentDate", Value: -1},
		{Key: "appointmentTime", Value: -1},
	})

	cursor, err := r.Collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) error {
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": appointmentID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// MarkReminderSent is idempotent: setting the flag twice is harmless.
func (r *AppointmentMongoRepository) MarkReminderSent(ctx context.Context, appointmentID string) error {
	update := bson.M{"$set": bson.M{
		"reminderSent": true,
		"updatedAt":    time.Now(),
	}}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": appointmentID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
