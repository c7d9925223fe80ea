package models

import (
	"time"

	"github.com/kchitera56/bakholokoe-website/internal/utils"
)

// BookingCategory identifies which booking form produced a record.
type BookingCategory string

const (
	CategoryHunt          BookingCategory = "hunt"
	CategoryAccommodation BookingCategory = "accommodation"
	CategoryWater         BookingCategory = "water"
)

// Booking is one submitted booking form. Records are append-only: there is no
// update or delete path anywhere in the system.
type Booking struct {
	ID        utils.SixID     `bson:"_id,omitempty" json:"id,omitempty"`
	Category  BookingCategory `bson:"category" json:"category"`
	UserEmail string          `bson:"user" json:"user"` // submitter identity from the session
	FirstName string          `bson:"first_name" json:"first_name"`
	Contact   string          `bson:"contact" json:"contact"`

	// Category-specific fields; only the ones for the record's category are set.
	HuntDate        string `bson:"hunt_date,omitempty" json:"hunt_date,omitempty"`
	CheckinDate     string `bson:"checkin_date,omitempty" json:"checkin_date,omitempty"`
	ProductQuantity string `bson:"product_quantity,omitempty" json:"product_quantity,omitempty"`
	Location        string `bson:"location,omitempty" json:"location,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
