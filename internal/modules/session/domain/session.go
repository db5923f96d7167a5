package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Keys of the two persisted entries. They are written and removed together
// but the store gives no atomicity across them.
const (
	TokenKey = "userToken"
	UserKey  = "userInfo"
)

type UserType string

const (
	UserTypeClient UserType = "client"
	UserTypeWorker UserType = "worker"
)

func (t UserType) Validate() error {
	switch t {
	case UserTypeClient, UserTypeWorker:
		return nil
	default:
		return fmt.Errorf("unsupported user type %q", string(t))
	}
}

type User struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone,omitempty"`
	UserType UserType `json:"user_type"`
}

// UnmarshalJSON accepts both user_type and userType spellings.
func (u *User) UnmarshalJSON(b []byte) error {
	type plain User
	aux := struct {
		plain
		CamelType UserType `json:"userType"`
	}{}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*u = User(aux.plain)
	if u.UserType == "" {
		u.UserType = aux.CamelType
	}
	return nil
}

// Validate checks the fields the client relies on. Email is carried when the
// server sends it but is not required to hold a session.
func (u User) Validate() error {
	if u.ID <= 0 {
		return fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("user name is required")
	}
	return u.UserType.Validate()
}

// Session is either fully present or the zero value.
type Session struct {
	Token string
	User  User
}

func (s Session) Present() bool {
	return s.Token != ""
}

func (s Session) Validate() error {
	if strings.TrimSpace(s.Token) == "" {
		return fmt.Errorf("session token is required")
	}
	return s.User.Validate()
}

type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

type Snapshot struct {
	State   State
	Session Session
	Loading bool
}

type Registration struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Password string   `json:"password"`
	UserType UserType `json:"user_type"`
}
