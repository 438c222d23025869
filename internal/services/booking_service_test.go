package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retreatly/internal/models/db_models"
	"retreatly/internal/models/request_models"
	"retreatly/pkg/utils"
)

type fakeBookingRepo struct {
	bookings map[string]*db_models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*db_models.Booking)}
}

func (f *fakeBookingRepo) Insert(ctx context.Context, booking *db_models.Booking) error {
	booking.ID = uuid.New()
	f.bookings[booking.ID.String()] = booking
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*db_models.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) ListByUserId(ctx context.Context, userId string, page, pageSize int) ([]db_models.Booking, error) {
	var out []db_models.Booking
	for _, b := range f.bookings {
		if b.UserID.String() == userId {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	if b, ok := f.bookings[id]; ok {
		b.Status = status
	}
	return nil
}

func (f *fakeBookingRepo) InsertTransaction(ctx context.Context, txn *db_models.Transaction) error {
	txn.ID = uuid.New()
	return nil
}

func (f *fakeBookingRepo) FindTransactionByProviderTxnID(ctx context.Context, providerTxnID string) (*db_models.Transaction, error) {
	return nil, nil
}

func (f *fakeBookingRepo) MarkTransactionPaid(ctx context.Context, txn *db_models.Transaction, paidAt int64) error {
	return nil
}

func (f *fakeBookingRepo) UpdateTransactionStatus(ctx context.Context, id string, status string) error {
	return nil
}

func (f *fakeBookingRepo) UpdateTransactionMetadata(ctx context.Context, id string, metadata []byte) error {
	return nil
}

type fakeRetreatRepo struct {
	retreat   *db_models.Retreat
	confirmed int64
}

func (f *fakeRetreatRepo) Create(ctx context.Context, retreat *db_models.Retreat) error { return nil }

func (f *fakeRetreatRepo) GetByID(ctx context.Context, id string) (*db_models.Retreat, error) {
	if f.retreat != nil && f.retreat.ID.String() == id {
		return f.retreat, nil
	}
	return nil, nil
}

func (f *fakeRetreatRepo) ListPublished(ctx context.Context, page, pageSize int) ([]db_models.Retreat, error) {
	return nil, nil
}

func (f *fakeRetreatRepo) ListByCategory(ctx context.Context, category string, page, pageSize int) ([]db_models.Retreat, error) {
	return nil, nil
}

func (f *fakeRetreatRepo) ListByIDs(ctx context.Context, ids []string) ([]db_models.Retreat, error) {
	return nil, nil
}

func (f *fakeRetreatRepo) CountConfirmedGuests(ctx context.Context, retreatID string) (int64, error) {
	return f.confirmed, nil
}

type fakeAccountRepo struct {
	account *db_models.Account
}

func (f *fakeAccountRepo) InsertTx(account *db_models.Account, ctx context.Context) error { return nil }

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	if f.account != nil && f.account.ID.String() == id {
		return f.account, nil
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return nil, nil
}

type recorderMail struct {
	confirmations []string
	notifications []string
	subjects      []string
}

func (r *recorderMail) SendBookingConfirmation(to, retreatTitle, startDate string) error {
	r.confirmations = append(r.confirmations, to)
	return nil
}

func (r *recorderMail) SendMailToNotifyUser(to, subject, body, ctaText, ctaURL string) error {
	r.notifications = append(r.notifications, to)
	r.subjects = append(r.subjects, subject)
	return nil
}

func newBookingFixture() (BookingServiceInterface, *fakeBookingRepo, *fakeRetreatRepo, *fakeAccountRepo, *recorderMail) {
	bookingRepo := newFakeBookingRepo()
	retreatRepo := &fakeRetreatRepo{}
	accountRepo := &fakeAccountRepo{}
	mail := &recorderMail{}
	svc := NewBookingService(bookingRepo, retreatRepo, accountRepo, mail, PayOSConfig{ProviderName: "payos"})
	return svc, bookingRepo, retreatRepo, accountRepo, mail
}

func publishedRetreat(capacity int) *db_models.Retreat {
	return &db_models.Retreat{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		Title:       "Cedar Grove Weekend",
		Capacity:    capacity,
		PriceMinor:  25000,
		Currency:    "usd",
		IsPublished: true,
	}
}

func TestBookingService_CreateBooking(t *testing.T) {
	userId := uuid.New()

	t.Run("unpublished retreat looks like a missing one", func(t *testing.T) {
		svc, _, retreatRepo, _, _ := newBookingFixture()
		retreat := publishedRetreat(10)
		retreat.IsPublished = false
		retreatRepo.retreat = retreat

		_, err := svc.CreateBooking(context.Background(), userId, request_models.CreateBookingRequest{
			RetreatID: retreat.ID.String(),
		})

		assert.ErrorIs(t, err, utils.ErrRetreatNotFound)
	})

	t.Run("guests default to one and the booking starts pending", func(t *testing.T) {
		svc, _, retreatRepo, _, _ := newBookingFixture()
		retreatRepo.retreat = publishedRetreat(10)

		resp, err := svc.CreateBooking(context.Background(), userId, request_models.CreateBookingRequest{
			RetreatID: retreatRepo.retreat.ID.String(),
		})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Guests)
		assert.Equal(t, db_models.BookingStatusPending, resp.Status)
	})

	t.Run("over capacity is rejected", func(t *testing.T) {
		svc, _, retreatRepo, _, _ := newBookingFixture()
		retreatRepo.retreat = publishedRetreat(10)
		retreatRepo.confirmed = 9

		_, err := svc.CreateBooking(context.Background(), userId, request_models.CreateBookingRequest{
			RetreatID: retreatRepo.retreat.ID.String(),
			Guests:    2,
		})

		assert.ErrorIs(t, err, utils.ErrRetreatFull)
	})
}

func TestBookingService_CancelBooking(t *testing.T) {
	userId := uuid.New()

	seedBooking := func(bookingRepo *fakeBookingRepo, retreatRepo *fakeRetreatRepo, accountRepo *fakeAccountRepo) *db_models.Booking {
		retreat := publishedRetreat(10)
		retreatRepo.retreat = retreat
		accountRepo.account = &db_models.Account{
			BaseModel: db_models.BaseModel{ID: userId},
			Email:     "guest@example.com",
		}
		booking := &db_models.Booking{
			RetreatID: retreat.ID,
			UserID:    userId,
			Guests:    1,
			Status:    db_models.BookingStatusPending,
			Retreat:   retreat,
		}
		require.NoError(t, bookingRepo.Insert(context.Background(), booking))
		return booking
	}

	t.Run("cancels and notifies the guest by mail", func(t *testing.T) {
		svc, bookingRepo, retreatRepo, accountRepo, mail := newBookingFixture()
		booking := seedBooking(bookingRepo, retreatRepo, accountRepo)

		err := svc.CancelBooking(context.Background(), userId, booking.ID.String())

		require.NoError(t, err)
		assert.Equal(t, db_models.BookingStatusCancelled, booking.Status)
		require.Len(t, mail.notifications, 1)
		assert.Equal(t, "guest@example.com", mail.notifications[0])
		assert.Contains(t, mail.subjects[0], "Cedar Grove Weekend")
	})

	t.Run("cancelling again is a quiet no-op", func(t *testing.T) {
		svc, bookingRepo, retreatRepo, accountRepo, mail := newBookingFixture()
		booking := seedBooking(bookingRepo, retreatRepo, accountRepo)

		require.NoError(t, svc.CancelBooking(context.Background(), userId, booking.ID.String()))
		require.NoError(t, svc.CancelBooking(context.Background(), userId, booking.ID.String()))

		assert.Len(t, mail.notifications, 1)
	})

	t.Run("another user's booking looks like a missing one", func(t *testing.T) {
		svc, bookingRepo, retreatRepo, accountRepo, _ := newBookingFixture()
		booking := seedBooking(bookingRepo, retreatRepo, accountRepo)

		err := svc.CancelBooking(context.Background(), uuid.New(), booking.ID.String())

		assert.ErrorIs(t, err, utils.ErrBookingNotFound)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc, _, _, _, _ := newBookingFixture()

		err := svc.CancelBooking(context.Background(), userId, uuid.NewString())

		assert.ErrorIs(t, err, utils.ErrBookingNotFound)
	})
}
