package models

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RolePublisher Role = "publisher"
)

func AllRoles() []Role {
	return []Role{RoleUser, RoleAdmin, RolePublisher}
}

func (r Role) Valid() bool {
	for _, role := range AllRoles() {
		if r == role {
			return true
		}
	}
	return false
}

// Token is a one-time secret embedded in a User, used for email
// verification and password resets.
type Token struct {
	Value     string    `json:"tokenValue"`
	CreatedAt time.Time `json:"created"`
}

// Expired reports whether more than lifespan has passed since the token was issued.
func (t Token) Expired(lifespan time.Duration, now time.Time) bool {
	return now.Sub(t.CreatedAt) > lifespan
}

type User struct {
	ID                string `json:"_id"`
	Email             string `json:"email"`
	Password          string `json:"-"`
	Role              Role   `json:"role"`
	Verified          bool   `json:"verified"`
	EmailVerification *Token `json:"-"`
	PasswordToken     *Token `json:"-"`
}
