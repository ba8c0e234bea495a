package models

import "fmt"

// RelationType identifies the kind of relationship between two tasks.
// Parent and child edges are directed; related edges are symmetric.
type RelationType int

const (
	RelationParent RelationType = iota + 1
	RelationChild
	RelationRelated
)

// String returns the canonical lowercase name of the relation type.
func (rt RelationType) String() string {
	switch rt {
	case RelationParent:
		return "parent"
	case RelationChild:
		return "child"
	case RelationRelated:
		return "related"
	default:
		return "unknown"
	}
}

// IsValid reports whether the value is a known relation type.
func (rt RelationType) IsValid() bool {
	switch rt {
	case RelationParent, RelationChild, RelationRelated:
		return true
	default:
		return false
	}
}

// Directed reports whether the relation type carries direction.
// Only directed edges participate in cycle validation.
func (rt RelationType) Directed() bool {
	return rt == RelationParent || rt == RelationChild
}

// ParseRelationType converts a user-supplied string into a RelationType.
func ParseRelationType(s string) (RelationType, error) {
	switch s {
	case "parent":
		return RelationParent, nil
	case "child":
		return RelationChild, nil
	case "related":
		return RelationRelated, nil
	default:
		return 0, fmt.Errorf("unknown relation type %q (want parent, child or related)", s)
	}
}
