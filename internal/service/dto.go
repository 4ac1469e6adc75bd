package service

import "github.com/google/uuid"

// DTOs form the external request/response boundary of the service layer.
// They are flat field bags with no behavior; the transport layer
// deserializes requests into them and serializes the overview shapes back.

// UserDTO carries user fields as submitted by a caller. BirthDate is a
// dd.MM.yyyy string and is validated before any store interaction.
type UserDTO struct {
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	BirthDate string     `json:"birth_date"`
	Password  string     `json:"password"`
}

// AccountDTO carries account fields as submitted by a caller.
type AccountDTO struct {
	AccountID *uuid.UUID `json:"account_id,omitempty"`
	Name      string     `json:"name"`
	Dispo     float64    `json:"dispo"`
	Limit     float64    `json:"limit"`
}

// TransactionDTO carries the fields of a transfer record as submitted by a
// caller. The creation time is server-assigned and intentionally absent.
type TransactionDTO struct {
	OriginID uuid.UUID `json:"origin_id"`
	TargetID uuid.UUID `json:"target_id"`
	Amount   float64   `json:"amount"`
}

// AccountOverviewDTO is the read-shaped projection of an account.
type AccountOverviewDTO struct {
	AccountID   uuid.UUID `json:"account_id"`
	Name        string    `json:"name"`
	Balance     float64   `json:"balance"`
	Dispo       float64   `json:"dispo"`
	Limit       float64   `json:"limit"`
	Created     string    `json:"created"`
	LastUpdated string    `json:"last_updated"`
}

// UserOverviewDTO is the read-shaped projection of a user, including
// summaries of the accounts the user owns.
type UserOverviewDTO struct {
	UserID      uuid.UUID            `json:"user_id"`
	FirstName   string               `json:"first_name"`
	LastName    string               `json:"last_name"`
	Birthdate   string               `json:"birthdate"`
	Password    string               `json:"password"`
	Created     string               `json:"created"`
	LastUpdated string               `json:"last_updated"`
	Accounts    []AccountOverviewDTO `json:"accounts"`
}

// TransactionOverviewDTO is the read-shaped projection of a transfer record.
type TransactionOverviewDTO struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	OriginID      uuid.UUID `json:"origin_id"`
	TargetID      uuid.UUID `json:"target_id"`
	Amount        float64   `json:"amount"`
	Created       string    `json:"created"`
}
