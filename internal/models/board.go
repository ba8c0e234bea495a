package models

import "time"

// Board represents a single kanban board, rendered as a tab
type Board struct {
	ID        int
	Name      string
	Prefix    string // Ticket code prefix, e.g. "KV"
	CreatedAt time.Time
}

// Column represents a single column within a board
type Column struct {
	ID       int
	BoardID  int
	Name     string
	Position int
}
