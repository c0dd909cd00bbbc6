package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// StoredUser is the single demo account. Registration overwrites it
// wholesale; at most one record ever exists. The password is stored in
// plaintext and login matches it exactly, an acknowledged property of this
// demo, not something the storage layer tries to harden.
type StoredUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Pass  string `json:"pass"`
}
