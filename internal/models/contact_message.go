package models

import (
	"github.com/kchitera56/bakholokoe-website/internal/utils"
)

// ContactMessage is a message from the contact form. The submitter may be
// anonymous (name/email/phone from the form) or a logged-in user (name from
// the user record, phone empty).
//
// Timestamp is kept as an RFC 3339 string so that listing sorts
// lexicographically, matching the stored data: a missing timestamp sorts as
// the empty string, i.e. older than everything timestamped.
type ContactMessage struct {
	ID        utils.SixID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string      `bson:"name" json:"name"`
	Email     string      `bson:"email" json:"email"`
	Phone     string      `bson:"phone" json:"phone"`
	Message   string      `bson:"message" json:"message"`
	Timestamp string      `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
}
