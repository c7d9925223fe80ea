package models

import (
	"strings"
	"time"
)

// User represents a registered site user.
//
// Users are keyed by EmailKey(Email) rather than a generated ID so that the
// identity store stays a plain email-to-record lookup. The unique _id index is
// what makes signup's insert a conditional write.
type User struct {
	EmailKey     string    `bson:"_id" json:"-"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	PasswordHash string    `bson:"password" json:"-"` // bcrypt hash, never the plaintext
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// EmailKey normalizes an email address into a store-safe document key by
// replacing dots with underscores.
//
// Known limitation carried over from the original data layout: two addresses
// that differ only in '.' vs '_' (e.g. "a.b@x" and "a_b@x") collide on the
// same key.
func EmailKey(email string) string {
	return strings.ReplaceAll(email, ".", "_")
}
