package board

import (
	"github.com/rvannatta/kanva/internal/models"
	"github.com/rvannatta/kanva/internal/user"
)

// MovePermission is a capability handed to the UI at startup. It answers
// whether a specific task may be dropped onto a specific board, so the UI
// never consults role state directly.
type MovePermission interface {
	CanMoveTaskToBoard(task *models.Task, targetBoardID int) bool
}

// rolePermission grants moves based on the user's role and memberships.
type rolePermission struct {
	user *user.User
}

// NewMovePermission builds the move capability for the given user. A nil
// user yields a capability that denies everything.
func NewMovePermission(u *user.User) MovePermission {
	return &rolePermission{user: u}
}

// CanMoveTaskToBoard reports whether the user may move the task onto the
// target board. Moving a task onto the board it already occupies is never
// allowed; the answer is about the destination, so members only need to
// belong to the target board, not the source.
func (p *rolePermission) CanMoveTaskToBoard(task *models.Task, targetBoardID int) bool {
	if task == nil || targetBoardID <= 0 {
		return false
	}
	if task.BoardID == targetBoardID {
		return false
	}
	if p.user == nil {
		return false
	}

	switch p.user.Role {
	case user.RoleAdmin:
		return true
	case user.RoleMember:
		return p.user.BelongsTo(targetBoardID)
	default:
		return false
	}
}
