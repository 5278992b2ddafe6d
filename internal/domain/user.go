package domain

import "time"

// Role is resolved once at authentication time and carried in the token,
// never re-derived per call.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleStaff   Role = "STAFF"
	RoleAdmin   Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           int32     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Department   string    `json:"department"`
	CreatedOn    time.Time `json:"created_on"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
