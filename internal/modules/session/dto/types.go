package dto

import "time"

type LoginInput struct {
	Email    string
	Password string
}

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	UserType string
}

type LogoutInput struct {
	// Remote also tells the server to drop the session. Failures are ignored.
	Remote bool
}

type UserOutput struct {
	ID       int64
	Name     string
	Email    string
	Phone    string
	UserType string
}

type SessionOutput struct {
	Authenticated bool
	Loading       bool
	Token         string
	User          UserOutput
}

type ClaimsOutput struct {
	Subject   string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
