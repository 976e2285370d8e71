package entity

// Role is a user's role in the review workflow
type Role string

const (
	RoleEmployee       Role = "employee"
	RoleProjectManager Role = "project_manager"
)

// CanReview returns true if users with this role may approve or
// reject forms assigned to them
func (r Role) CanReview() bool {
	return r == RoleProjectManager
}

// String returns the wire representation of the role
func (r Role) String() string {
	return string(r)
}

// User is a reference-data record fetched read-only by this client
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"is_active"`
}

// Identity is the authenticated user on whose behalf the client acts.
// It is injected from configuration at startup; workflows never read
// identity from globals.
type Identity struct {
	UserID   int64
	FullName string
	Role     Role
}

// CanReview returns true if this identity may act as a reviewer
func (i Identity) CanReview() bool {
	return i.Role.CanReview()
}
