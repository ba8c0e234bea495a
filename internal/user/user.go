package user

import (
	"os"
	"os/user"
)

// Role determines what board operations the current user may perform.
type Role string

const (
	// RoleAdmin can move tasks into any board.
	RoleAdmin Role = "admin"
	// RoleMember can move tasks into boards they belong to.
	RoleMember Role = "member"
	// RoleViewer cannot move tasks across boards.
	RoleViewer Role = "viewer"
)

// ParseRole converts a string into a Role, defaulting to viewer for
// unrecognized input so a typo in configuration never grants access.
func ParseRole(s string) Role {
	switch s {
	case "admin":
		return RoleAdmin
	case "member":
		return RoleMember
	default:
		return RoleViewer
	}
}

// User is the identity the client operates as. BoardIDs lists the boards a
// member belongs to; it is ignored for admins and viewers.
type User struct {
	Name     string
	Role     Role
	BoardIDs map[int]bool
}

// New creates a user with the given role and board memberships.
func New(name string, role Role, boardIDs ...int) *User {
	ids := make(map[int]bool, len(boardIDs))
	for _, id := range boardIDs {
		ids[id] = true
	}
	return &User{Name: name, Role: role, BoardIDs: ids}
}

// BelongsTo reports whether the user is a member of the given board.
func (u *User) BelongsTo(boardID int) bool {
	if u == nil {
		return false
	}
	return u.BoardIDs[boardID]
}

// CurrentUsername returns the current system username.
// It tries multiple methods with fallbacks:
// 1. user.Current() - most reliable, gets username from OS
// 2. USER environment variable - fallback for restricted environments
// 3. "unknown" - final fallback to ensure a non-empty value
func CurrentUsername() string {
	currentUser, err := user.Current()
	if err != nil {
		username := os.Getenv("USER")
		if username == "" {
			return "unknown"
		}
		return username
	}
	return currentUser.Username
}
