package payment

import (
	"context"
	"errors"
	"testing"

	paymentRepo "clinicportal/database/repository/payment"
	"clinicportal/models"

	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func TestMinorUnitsMultipliesByHundred(t *testing.T) {
	require.Equal(t, int64(5000), MinorUnits(50))
	require.Equal(t, int64(199), MinorUnits(1.99))
	require.Equal(t, int64(0), MinorUnits(0))
}

// Prices whose float64 product falls a hair under the integer must still
// charge the full amount; truncation would lose a cent on each of these.
func TestMinorUnitsRoundsInexactProducts(t *testing.T) {
	require.Equal(t, int64(1999), MinorUnits(19.99))
	require.Equal(t, int64(29), MinorUnits(0.29))
	require.Equal(t, int64(435), MinorUnits(4.35))
	require.Equal(t, int64(820), MinorUnits(8.20))
}

func TestCreateIntentRequestsMinorUnitAmount(t *testing.T) {
	var got *stripe.PaymentIntentParams
	svc := &DefaultPaymentService{
		Currency: "usd",
		IntentFn: func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
			got = params
			return &stripe.PaymentIntent{ClientSecret: "pi_secret_123"}, nil
		},
	}

	resp, err := svc.CreateIntent(context.Background(), 50)
	require.NoError(t, err)
	require.Equal(t, "pi_secret_123", resp.ClientSecret)

	require.NotNil(t, got)
	require.Equal(t, int64(5000), *got.Amount)
	require.Equal(t, "usd", *got.Currency)
	require.Len(t, got.PaymentMethodTypes, 1)
	require.Equal(t, "card", *got.PaymentMethodTypes[0])
	require.NotNil(t, got.IdempotencyKey)
}

func TestCreateIntentRejectsNonPositivePrice(t *testing.T) {
	svc := &DefaultPaymentService{
		Currency: "usd",
		IntentFn: func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
			t.Fatal("processor must not be called for an invalid price")
			return nil, nil
		},
	}

	_, err := svc.CreateIntent(context.Background(), 0)
	require.Error(t, err)
	_, err = svc.CreateIntent(context.Background(), -10)
	require.Error(t, err)
}

func TestCreateIntentPropagatesProcessorError(t *testing.T) {
	processorErr := errors.New("card declined")
	svc := &DefaultPaymentService{
		Currency: "usd",
		IntentFn: func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
			return nil, processorErr
		},
	}

	_, err := svc.CreateIntent(context.Background(), 25)
	require.ErrorIs(t, err, processorErr)
}

// fakePaymentRepo mirrors the reconciliation contract: the payment insert and
// the booking mark-paid land together or not at all, transactionIds are
// unique, and an unknown booking aborts.
type fakePaymentRepo struct {
	payments []models.Payment
	bookings map[string]*models.Booking
}

func newFakePaymentRepo(bookings ...*models.Booking) *fakePaymentRepo {
	f := &fakePaymentRepo{bookings: make(map[string]*models.Booking)}
	for _, b := range bookings {
		f.bookings[b.ID.Hex()] = b
	}
	return f
}

func (f *fakePaymentRepo) Record(ctx context.Context, p *models.Payment) (string, error) {
	for _, existing := range f.payments {
		if existing.TransactionID == p.TransactionID {
			return "", paymentRepo.ErrDuplicateTransaction
		}
	}
	b, ok := f.bookings[p.BookingID]
	if !ok {
		return "", paymentRepo.ErrBookingNotFound
	}
	f.payments = append(f.payments, *p)
	b.Paid = true
	b.TransactionID = p.TransactionID
	return "000000000000000000000002", nil
}

func (f *fakePaymentRepo) GetByBookingID(ctx context.Context, bookingID string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out, nil
}

func testBooking() *models.Booking {
	return &models.Booking{
		AppointmentDate: "2026-09-01",
		Treatment:       "Teeth Cleaning",
		Email:           "patient@example.com",
	}
}

func TestRecordMarksBookingPaid(t *testing.T) {
	bkg := testBooking()
	repo := newFakePaymentRepo(bkg)
	svc := &DefaultPaymentService{Repo: repo, Currency: "usd"}

	id, err := svc.Record(context.Background(), &models.Payment{
		BookingID:     bkg.ID.Hex(),
		TransactionID: "tx1",
		Price:         100,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.Len(t, repo.payments, 1)
	require.True(t, bkg.Paid)
	require.Equal(t, "tx1", bkg.TransactionID)
}

func TestRecordSecondTransactionLastWriteWins(t *testing.T) {
	bkg := testBooking()
	repo := newFakePaymentRepo(bkg)
	svc := &DefaultPaymentService{Repo: repo, Currency: "usd"}

	_, err := svc.Record(context.Background(), &models.Payment{BookingID: bkg.ID.Hex(), TransactionID: "tx1", Price: 100})
	require.NoError(t, err)
	_, err = svc.Record(context.Background(), &models.Payment{BookingID: bkg.ID.Hex(), TransactionID: "tx2", Price: 100})
	require.NoError(t, err)

	require.Len(t, repo.payments, 2)
	require.True(t, bkg.Paid)
	require.Equal(t, "tx2", bkg.TransactionID)
}

func TestRecordRejectsReplayedTransaction(t *testing.T) {
	bkg := testBooking()
	repo := newFakePaymentRepo(bkg)
	svc := &DefaultPaymentService{Repo: repo, Currency: "usd"}

	_, err := svc.Record(context.Background(), &models.Payment{BookingID: bkg.ID.Hex(), TransactionID: "tx1", Price: 100})
	require.NoError(t, err)

	_, err = svc.Record(context.Background(), &models.Payment{BookingID: bkg.ID.Hex(), TransactionID: "tx1", Price: 100})
	require.ErrorIs(t, err, paymentRepo.ErrDuplicateTransaction)
	require.Len(t, repo.payments, 1)
}

func TestRecordFailsForUnknownBooking(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := &DefaultPaymentService{Repo: repo, Currency: "usd"}

	_, err := svc.Record(context.Background(), &models.Payment{
		BookingID:     "000000000000000000000099",
		TransactionID: "tx1",
		Price:         100,
	})
	require.ErrorIs(t, err, paymentRepo.ErrBookingNotFound)
	require.Empty(t, repo.payments, "no orphan payment may be left behind")
}

func TestRecordValidatesReferences(t *testing.T) {
	svc := &DefaultPaymentService{Repo: newFakePaymentRepo(), Currency: "usd"}

	_, err := svc.Record(context.Background(), &models.Payment{TransactionID: "tx1"})
	require.Error(t, err)
	_, err = svc.Record(context.Background(), &models.Payment{BookingID: "000000000000000000000001"})
	require.Error(t, err)
}
