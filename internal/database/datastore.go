package database

// DataStore defines the unified interface for all data operations needed by
// the client. It is composed of smaller, domain-specific interfaces so
// consumers can depend on just the slice they use.
type DataStore interface {
	BoardRepository
	ColumnRepository
	TaskRepository
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
