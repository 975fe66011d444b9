package entity

import (
	"github.com/google/uuid"
)

// db model; credentials and sessions live in the auth service,
// this table only backs ownership references and profile lookups
type User struct {
	Id        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt string    `json:"createdAt" db:"created_at"`
}
