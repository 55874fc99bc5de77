package model

import "time"

// Income recurs identically for Months consecutive calendar months starting
// at the month containing StartDate.
type Income struct {
	CreatedAt  time.Time `json:"createdAt"`
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Amount     float64   `json:"amount"`
	Months     int       `json:"months"`
	StartDate  string    `json:"startDate"` // YYYY-MM-DD
	CategoryID string    `json:"categoryId,omitempty"`
	OwnerID    string    `json:"ownerId,omitempty"`
}
