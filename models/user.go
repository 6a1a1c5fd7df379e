package models

import "time"

// UserProfile is the application-owned user record in the users collection,
// keyed 1:1 by the identity service uid. It mirrors and extends the identity
// record; the identity service's own credential is separate from
// HashedPassword, which is a redundant application-level digest.
type UserProfile struct {
	UID            string     `bson:"_id" json:"uid"`
	FirstName      string     `bson:"firstName" json:"firstName"`
	LastName       string     `bson:"lastName" json:"lastName"`
	Email          string     `bson:"email" json:"email"`
	HashedPassword string     `bson:"hashedPassword" json:"-"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
	LastLoginAt    *time.Time `bson:"lastLoginAt" json:"lastLoginAt"`
	IsActive       bool       `bson:"isActive" json:"isActive"`
}
