package paymentRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clinicportal/models"
	"clinicportal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPaymentRepo implements PaymentRepository using MongoDB. It holds both
// the payments and bookings collections because reconciliation writes to
// both inside one transaction.
type MongoPaymentRepo struct {
	paymentColl *mongo.Collection
	bookingColl *mongo.Collection
}

// NewMongoPaymentRepo creates a PaymentRepository backed by the payments and
// bookings collections.
func NewMongoPaymentRepo(db *mongo.Database) PaymentRepository {
	repo := &MongoPaymentRepo{
		paymentColl: db.Collection("payments"),
		bookingColl: db.Collection("bookings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create payment indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ensureIndexes makes replayed processor confirmations land on the unique
// transactionId index instead of producing a second payment record.
func (r *MongoPaymentRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "transactionId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "bookingId", Value: 1}}},
	}

	_, err := r.paymentColl.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Record inserts the payment and marks the referenced booking paid. Both
// writes run in a multi-document transaction; when the deployment does not
// support transactions (no replica set) it falls back to sequential writes
// and logs the degraded mode.
func (r *MongoPaymentRepo) Record(ctx context.Context, payment *models.Payment) (string, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	payment.CreatedAt = time.Now()

	bookingOID, err := primitive.ObjectIDFromHex(payment.BookingID)
	if err != nil {
		return "", fmt.Errorf("invalid booking id %q: %w", payment.BookingID, err)
	}

	client := r.paymentColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return "", fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var insertedID string
	txnFn := func(sc mongo.SessionContext) error {
		id, err := r.applyWrites(sc, payment, bookingOID)
		if err != nil {
			return err
		}
		insertedID = id
		return nil
	}

	err = mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
	if err == nil {
		return insertedID, nil
	}
	if err == ErrBookingNotFound || err == ErrDuplicateTransaction {
		return "", err
	}
	if !isTransactionUnsupported(err) {
		return "", fmt.Errorf("payment transaction failed: %w", err)
	}

	// Standalone deployment: the insert-then-update pair runs without
	// atomicity, matching the legacy two-write behavior.
	utils.GetLogger().Warn("mongo transactions unavailable, recording payment non-atomically")
	return r.applyWrites(ctx, payment, bookingOID)
}

// applyWrites performs the two reconciliation writes with whatever context it
// is given, a session context inside a transaction or a plain one outside.
// The booking is marked first: on the non-transactional fallback an unknown
// booking then aborts before any payment document exists, so no orphan
// record is left behind either way. A replayed transactionId re-applies the
// identical booking fields before the insert trips the unique index.
func (r *MongoPaymentRepo) applyWrites(ctx context.Context, payment *models.Payment, bookingOID primitive.ObjectID) (string, error) {
	update := bson.M{"$set": bson.M{
		"paid":          true,
		"transactionId": payment.TransactionID,
	}}
	upd, err := r.bookingColl.UpdateOne(ctx, bson.M{"_id": bookingOID}, update)
	if err != nil {
		return "", fmt.Errorf("failed to mark booking paid: %w", err)
	}
	if upd.MatchedCount == 0 {
		return "", ErrBookingNotFound
	}

	res, err := r.paymentColl.InsertOne(ctx, payment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicateTransaction
		}
		return "", fmt.Errorf("failed to insert payment: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// GetByBookingID retrieves payments recorded against a booking.
func (r *MongoPaymentRepo) GetByBookingID(ctx context.Context, bookingID string) ([]models.Payment, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.paymentColl.Find(ctx, bson.M{"bookingId": bookingID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payments: %w", err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}

// isTransactionUnsupported reports whether the server rejected the
// transaction because the deployment is not a replica set.
func isTransactionUnsupported(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Transaction numbers are only allowed") ||
		strings.Contains(msg, "transactions are not supported")
}
