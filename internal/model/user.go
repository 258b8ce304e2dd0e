// Package model holds the records persisted by the repository layer and
// returned by the API.
package model

import "time"

// User is a row of the users table. Only Name and Email change after
// creation.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
