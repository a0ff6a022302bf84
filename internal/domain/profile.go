// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"
)

// Profile roles.
const (
	RoleClient     = "client"
	RoleContractor = "contractor"
)

var (
	// ErrProfileNotFound indicates that the profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrEmailAlreadyExists indicates that the profile with the given email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")
	// ErrWrongPassword indicates the wrong password for the given profile.
	ErrWrongPassword = errors.New("wrong password")
	// ErrNotClient indicates that the profile is not a client.
	ErrNotClient = errors.New("profile is not a client")
)

// Profile holds client or contractor account data with a money balance.
type Profile struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"hashed_password"`
	FullName       string    `json:"full_name"`
	Profession     string    `json:"profession"`
	Role           string    `json:"role"`
	Balance        string    `json:"balance"` // must be non-negative
	CreatedAt      time.Time `json:"created_at"`
}

// CreateProfileParams is the input data to create a profile.
type CreateProfileParams struct {
	Email          string `json:"email"`
	HashedPassword string `json:"hashed_password"`
	FullName       string `json:"full_name"`
	Profession     string `json:"profession"`
	Role           string `json:"role"`
}

// ProfileWithoutPassword is Profile data excluding password data.
type ProfileWithoutPassword struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Profession string    `json:"profession"`
	Role       string    `json:"role"`
	Balance    string    `json:"balance"`
	CreatedAt  time.Time `json:"created_at"`
}
