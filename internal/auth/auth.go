// Package auth gates the admin views behind the single store credential.
package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Credentials holds the one admin account. When Hash is set it wins over the
// plain Password, which only exists as the development placeholder.
type Credentials struct {
	Username string
	Password string
	Hash     string
}

// Authenticate checks the supplied pair against the configured credential.
// There is no attempt counting or lockout; failure is a single error.
func (cr Credentials) Authenticate(username, password string) error {
	if subtle.ConstantTimeCompare([]byte(username), []byte(cr.Username)) != 1 {
		return ErrInvalidCredentials
	}
	if cr.Hash != "" {
		if bcrypt.CompareHashAndPassword([]byte(cr.Hash), []byte(password)) != nil {
			return ErrInvalidCredentials
		}
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(cr.Password)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}
