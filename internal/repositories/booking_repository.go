package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"retreatly/internal/models/db_models"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking *db_models.Booking) error
	GetByID(ctx context.Context, id string) (*db_models.Booking, error)
	ListByUserId(ctx context.Context, userId string, page, pageSize int) ([]db_models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status string) error

	InsertTransaction(ctx context.Context, txn *db_models.Transaction) error
	FindTransactionByProviderTxnID(ctx context.Context, providerTxnID string) (*db_models.Transaction, error)
	MarkTransactionPaid(ctx context.Context, txn *db_models.Transaction, paidAt int64) error
	UpdateTransactionStatus(ctx context.Context, id string, status string) error
	UpdateTransactionMetadata(ctx context.Context, id string, metadata []byte) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (b *bookingRepository) Insert(ctx context.Context, booking *db_models.Booking) error {
	return b.db.WithContext(ctx).Create(booking).Error
}

func (b *bookingRepository) GetByID(ctx context.Context, id string) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := b.db.WithContext(ctx).Preload("Retreat").First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (b *bookingRepository) ListByUserId(ctx context.Context, userId string, page, pageSize int) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	err := b.db.WithContext(ctx).
		Preload("Retreat").
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (page - 1) * pageSize
			return db.Offset(offset).Limit(pageSize)
		}).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (b *bookingRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	return b.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (b *bookingRepository) InsertTransaction(ctx context.Context, txn *db_models.Transaction) error {
	return b.db.WithContext(ctx).Create(txn).Error
}

func (b *bookingRepository) FindTransactionByProviderTxnID(ctx context.Context, providerTxnID string) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := b.db.WithContext(ctx).First(&txn, "provider_txn_id = ?", providerTxnID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

// MarkTransactionPaid flips the transaction and its booking to paid/confirmed
// in one DB transaction. Idempotent callers must check status first.
func (b *bookingRepository) MarkTransactionPaid(ctx context.Context, txn *db_models.Transaction, paidAt int64) error {
	return b.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Model(txn).Updates(map[string]interface{}{
			"status":  db_models.TxnStatusPaid,
			"paid_at": paidAt,
		}).Error; err != nil {
			return err
		}

		return tx.WithContext(ctx).
			Model(&db_models.Booking{}).
			Where("id = ?", txn.BookingID).
			Update("status", db_models.BookingStatusConfirmed).Error
	})
}

func (b *bookingRepository) UpdateTransactionStatus(ctx context.Context, id string, status string) error {
	return b.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (b *bookingRepository) UpdateTransactionMetadata(ctx context.Context, id string, metadata []byte) error {
	return b.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("id = ?", id).
		Update("metadata", metadata).Error
}
