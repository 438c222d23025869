package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string // "user", "host" or "admin"

	Bookings       []Booking      `gorm:"foreignKey:UserID"`
	JournalEntries []JournalEntry `gorm:"foreignKey:UserID"`
	HostedRetreats []Retreat      `gorm:"foreignKey:HostID"`
}
