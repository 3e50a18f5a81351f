package i

import (
	dmn "github.com/FunsaiSushi/mazewalker/domain"
)

// Authenticator registers player accounts and signs them in.
type Authenticator interface {
	Register(username, password string) error
	SignIn(username, password string) (*dmn.User, string, error)
}
