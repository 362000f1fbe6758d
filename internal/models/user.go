package models

import (
	"time"
)

type User struct {
	ID           ObjectID   `bson:"_id,omitempty" json:"id"`
	Name         string     `bson:"name" json:"name"`
	Email        string     `bson:"email" json:"email"`
	PasswordHash string     `bson:"password_hash" json:"-"`
	Phone        string     `bson:"phone,omitempty" json:"phone,omitempty"`
	IsActive     bool       `bson:"is_active" json:"is_active"`
	LastLoginAt  *time.Time `bson:"last_login_at,omitempty" json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `bson:"created_at,omitempty" json:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at,omitempty" json:"updated_at"`
}

func (User) CollectionName() string {
	return "users"
}

func (u User) GetObjectID() ObjectID {
	return u.ID
}

func (u User) GetUpdates() any {
	// update everything except ID and CreatedAt
	u.ID = ""
	u.CreatedAt = time.Time{}
	u.UpdatedAt = time.Now()
	return u
}
