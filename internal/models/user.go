package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User roles. Assigned once at registration; the dashboard, delete and
// export surfaces are admin-only.
const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

func ValidRole(role string) bool {
	return role == RoleEmployee || role == RoleAdmin
}

type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password_hash" json:"-"`
	Role         string        `bson:"role" json:"role"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updated_at"`
}
