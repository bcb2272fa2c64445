package entities

import "time"

// User represents a bot user with payment status.
// The quiz core only ever reads payment fields; they are written by the
// payment flow outside this module.
type User struct {
	ID          int64 // Telegram user ID
	ChatID      int64
	Username    string
	IsPaid      bool
	Tier        Tier // empty until a tier has been assigned
	TierPrice   float64
	PaymentDate *time.Time
	CreatedAt   time.Time
}

func NewUser(id, chatID int64, username string) *User {
	return &User{
		ID:       id,
		ChatID:   chatID,
		Username: username,
	}
}
