package models

import (
	"time"

	"github.com/kchitera56/bakholokoe-website/internal/utils"
)

// Review is a lodge review left by a user. At most one review per submitter
// email is allowed; the check is enforced at the service layer.
type Review struct {
	ID        utils.SixID `bson:"_id,omitempty" json:"id,omitempty"`
	UserEmail string      `bson:"user" json:"user"`
	Name      string      `bson:"name" json:"name"`
	Review    string      `bson:"review" json:"review"`
	Rating    string      `bson:"rating" json:"rating"`
	CreatedAt time.Time   `bson:"created_at" json:"created_at"`
}
