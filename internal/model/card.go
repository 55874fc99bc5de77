package model

import "time"

// Card is a payment instrument label. It has no lifecycle beyond
// create and delete.
type Card struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"ownerId,omitempty"`
}
