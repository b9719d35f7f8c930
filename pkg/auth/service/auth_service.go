package service

import "plantlog/entities"

type AuthService interface {
	// Register validates the fields, hashes the password and creates the
	// account. Returns entities.ErrValidation or entities.ErrDuplicate.
	Register(username, email, password string) (uint, error)
	// Authenticate returns the matching account, or nil when either the
	// username is unknown or the password is wrong.
	Authenticate(username, password string) (*entities.Account, error)
}
