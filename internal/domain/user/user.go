package user

import "fmt"

// Role is the account role.
type Role string

// Account roles.
const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleEditor  Role = "editor"
	RoleViewer  Role = "viewer"
)

// IsValid checks if the role is one of the supported values.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleEditor || r == RoleViewer
}

// Status is the account status.
type Status string

// Account statuses.
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

// IsValid checks if the status is one of the supported values.
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive || s == StatusPending
}

// User is the account aggregate (immutable value object).
type User struct {
	id         string
	name       string
	email      string
	role       Role
	status     Status
	avatarURL  string
	createdAt  string
	lastActive string
}

// New validates and creates a User. Dates are ISO calendar dates (YYYY-MM-DD).
func New(id, name, email string, role Role, status Status, avatarURL, createdAt, lastActive string) (User, error) {
	if id == "" {
		return User{}, fmt.Errorf("user ID is required")
	}
	if name == "" {
		return User{}, fmt.Errorf("user name is required")
	}
	if email == "" {
		return User{}, fmt.Errorf("user email is required")
	}
	if !role.IsValid() {
		return User{}, fmt.Errorf("invalid role: %q", role)
	}
	if !status.IsValid() {
		return User{}, fmt.Errorf("invalid status: %q", status)
	}
	return User{
		id:         id,
		name:       name,
		email:      email,
		role:       role,
		status:     status,
		avatarURL:  avatarURL,
		createdAt:  createdAt,
		lastActive: lastActive,
	}, nil
}

// ID returns the user identifier.
func (u User) ID() string { return u.id }

// Name returns the full name.
func (u User) Name() string { return u.name }

// Email returns the email address.
func (u User) Email() string { return u.email }

// Role returns the account role.
func (u User) Role() Role { return u.role }

// Status returns the account status.
func (u User) Status() Status { return u.status }

// AvatarURL returns the optional avatar image.
func (u User) AvatarURL() string { return u.avatarURL }

// CreatedAt returns the account creation date.
func (u User) CreatedAt() string { return u.createdAt }

// LastActive returns the last activity date, empty if never active.
func (u User) LastActive() string { return u.lastActive }
