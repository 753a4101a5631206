package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"clinicportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates an AppointmentRepository backed by the
// appointmentOptions collection.
func NewMongoAppointmentRepo(db *mongo.Database) AppointmentRepository {
	return &MongoAppointmentRepo{coll: db.Collection("appointmentOptions")}
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// GetAll retrieves the full unfiltered catalog.
func (r *MongoAppointmentRepo) GetAll(ctx context.Context) ([]models.AppointmentOption, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointment options: %w", err)
	}
	defer cursor.Close(ctx)

	var opts []models.AppointmentOption
	if err := cursor.All(ctx, &opts); err != nil {
		return nil, fmt.Errorf("failed to decode appointment options: %w", err)
	}
	return opts, nil
}

// GetSpecialties retrieves only the treatment names.
func (r *MongoAppointmentRepo) GetSpecialties(ctx context.Context) ([]models.Specialty, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	findOpts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve specialties: %w", err)
	}
	defer cursor.Close(ctx)

	var specialties []models.Specialty
	if err := cursor.All(ctx, &specialties); err != nil {
		return nil, fmt.Errorf("failed to decode specialties: %w", err)
	}
	return specialties, nil
}
