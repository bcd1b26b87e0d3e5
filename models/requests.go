package models

// LoginRequest is the credentials body for the login endpoint.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me,omitempty"`
}

// RegisterRequest is the body for admin-approved registration. Department and
// Role must match the pre-approved record for the email.
type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Department string `json:"department,omitempty"`
	Role       Role   `json:"role,omitempty"`
}

// ProfileUpdate is the body for editing the authenticated user's own profile.
// Empty fields are left unchanged.
type ProfileUpdate struct {
	Name     string `json:"name,omitempty"`
	Password string `json:"password,omitempty"`
}

// PasswordChange is the body for the change-password endpoint.
type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
