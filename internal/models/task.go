package models

import "time"

// Task represents a single card on a kanban board
type Task struct {
	ID          int
	Title       string
	Description string
	TicketCode  string // Display code like "KV-12", derived from the board prefix
	BoardID     int
	ColumnID    int
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationship sets. Parent/child edges are directed and, taken over
	// all tasks, must remain acyclic. Related edges are symmetric.
	ParentIDs  IDSet
	ChildIDs   IDSet
	RelatedIDs IDSet
}

// HasRelation reports whether the task already holds the given edge in the
// given direction. A child edge is only matched by an existing child edge,
// never by a parent edge.
func (t *Task) HasRelation(targetID int, relType RelationType) bool {
	if t == nil {
		return false
	}
	switch relType {
	case RelationParent:
		return t.ParentIDs.Has(targetID)
	case RelationChild:
		return t.ChildIDs.Has(targetID)
	case RelationRelated:
		return t.RelatedIDs.Has(targetID)
	default:
		return false
	}
}
