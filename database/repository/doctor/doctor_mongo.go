package doctorRepo

import (
	"context"
	"fmt"
	"time"

	"clinicportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDoctorRepo implements DoctorRepository using MongoDB. Image bytes are
// stored as bson binary exactly as uploaded.
type MongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo creates a DoctorRepository backed by the doctors
// collection.
func NewMongoDoctorRepo(db *mongo.Database) DoctorRepository {
	return &MongoDoctorRepo{coll: db.Collection("doctors")}
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// Insert stores a new doctor profile.
func (r *MongoDoctorRepo) Insert(ctx context.Context, doctor *models.Doctor) (string, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, doctor)
	if err != nil {
		return "", fmt.Errorf("failed to insert doctor: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// GetAll retrieves all doctor profiles.
func (r *MongoDoctorRepo) GetAll(ctx context.Context) ([]models.Doctor, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return doctors, nil
}

// Delete removes a doctor profile by its id.
func (r *MongoDoctorRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid doctor id %q: %w", id, err)
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete doctor with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("doctor with id %s not found", id)
	}
	return nil
}
