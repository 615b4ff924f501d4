// Package entity contains the core business objects of the project.
package entity

// Role represents the authorization level of an account.
type Role string

const (
	// RoleUser is a regular borrower.
	RoleUser Role = "user"
	// RoleAdmin manages the catalog, users and loan corrections.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// SessionState mirrors whether the account is logged in.
type SessionState string

const (
	SessionAuthenticated   SessionState = "Authenticated"
	SessionUnauthenticated SessionState = "Unauthenticated"
)
