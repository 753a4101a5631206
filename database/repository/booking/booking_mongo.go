package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"clinicportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a BookingRepository backed by the bookings
// collection.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	repo := &MongoBookingRepo{coll: db.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ensureIndexes creates the unique tuple index. The index, not the guard's
// read-before-insert, is what makes duplicate bookings impossible under
// concurrent load.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "email", Value: 1},
				{Key: "appointmentDate", Value: 1},
				{Key: "treatment", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "appointmentDate", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Insert stores a new booking document.
func (r *MongoBookingRepo) Insert(ctx context.Context, booking *models.Booking) (string, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	booking.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicateBooking
		}
		return "", fmt.Errorf("failed to insert booking: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// GetByID retrieves a booking by its hex id. Returns nil, nil when absent.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking id %q: %w", id, err)
	}

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

// GetByEmail retrieves all bookings made under an email address.
func (r *MongoBookingRepo) GetByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"email": email})
}

// GetByDate retrieves all bookings for an appointment date.
func (r *MongoBookingRepo) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"appointmentDate": date})
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// CountByTuple counts bookings matching the exact conflict tuple.
func (r *MongoBookingRepo) CountByTuple(ctx context.Context, date, email, treatment string) (int64, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"appointmentDate": date,
		"email":           email,
		"treatment":       treatment,
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}
