package db_models

import "github.com/google/uuid"

const (
	TxnStatusPending = "pending"
	TxnStatusPaid    = "paid"
	TxnStatusFailed  = "failed"
)

type Transaction struct {
	BaseModel
	AccountID     uuid.UUID
	BookingID     uuid.UUID
	AmountMinor   int64
	Currency      string
	Status        string
	Provider      string // "payos"
	ProviderTxnID string `gorm:"uniqueIndex"`
	PaidAt        int64
	Metadata      []byte `gorm:"type:jsonb"`
}
