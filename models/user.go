package models

import "strings"

// Role is the platform role assigned to a user account. The backend
// capitalizes role values in its JSON ("Student", "Instructor", "Admin"),
// so comparisons are case-insensitive.
type Role string

// Known platform roles.
const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// Is reports whether r names the same role as other, ignoring case.
func (r Role) Is(other Role) bool {
	return strings.EqualFold(string(r), string(other))
}

// UserStatus is the lifecycle state of a user account.
type UserStatus string

// Known account states.
const (
	StatusPending   UserStatus = "pending"
	StatusActive    UserStatus = "active"
	StatusSuspended UserStatus = "suspended"
)

// User is the account record returned by the backend for authentication and
// admin listings.
type User struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email,omitempty"`
	Role           Role       `json:"role"`
	DepartmentID   int64      `json:"department_id,omitempty"`
	DepartmentName string     `json:"department_name,omitempty"`
	Status         UserStatus `json:"status,omitempty"`
	CreatedAt      string     `json:"created_at,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool { return u.Role.Is(RoleAdmin) }

// IsInstructor reports whether the user holds the instructor role.
func (u User) IsInstructor() bool { return u.Role.Is(RoleInstructor) }

// IsStudent reports whether the user holds the student role.
func (u User) IsStudent() bool { return u.Role.Is(RoleStudent) }

// HasAnyRole reports whether the user holds at least one of the given roles.
func (u User) HasAnyRole(roles ...Role) bool {
	for _, role := range roles {
		if u.Role.Is(role) {
			return true
		}
	}
	return false
}
