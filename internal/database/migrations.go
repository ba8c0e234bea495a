package database

import "database/sql"

// runMigrations creates the database schema and seeds default data if needed
func runMigrations(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS boards (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			prefix TEXT NOT NULL UNIQUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS board_counters (
			board_id INTEGER PRIMARY KEY,
			next_ticket_number INTEGER NOT NULL DEFAULT 1,
			FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS columns (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			board_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			position INTEGER NOT NULL,
			FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			board_id INTEGER NOT NULL,
			column_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			ticket_code TEXT NOT NULL UNIQUE,
			position INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE,
			FOREIGN KEY (column_id) REFERENCES columns(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS task_relations (
			source_id INTEGER NOT NULL,
			target_id INTEGER NOT NULL,
			relation_type TEXT NOT NULL,
			PRIMARY KEY (source_id, target_id, relation_type),
			FOREIGN KEY (source_id) REFERENCES tasks(id) ON DELETE CASCADE,
			FOREIGN KEY (target_id) REFERENCES tasks(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_column ON tasks(column_id, position)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_board ON tasks(board_id)`,
		`CREATE INDEX IF NOT EXISTS idx_relations_target ON task_relations(target_id)`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return seedDefaultBoard(db)
}

// seedDefaultBoard inserts a starter board with columns if no boards exist
func seedDefaultBoard(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM boards").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	result, err := db.Exec(
		"INSERT INTO boards (name, prefix) VALUES (?, ?)",
		"Kanva", "KV",
	)
	if err != nil {
		return err
	}
	boardID, err := result.LastInsertId()
	if err != nil {
		return err
	}

	if _, err := db.Exec(
		"INSERT INTO board_counters (board_id, next_ticket_number) VALUES (?, 1)",
		boardID,
	); err != nil {
		return err
	}

	defaultColumns := []struct {
		name     string
		position int
	}{
		{"Todo", 0},
		{"In Progress", 1},
		{"Done", 2},
	}
	for _, col := range defaultColumns {
		if _, err := db.Exec(
			"INSERT INTO columns (board_id, name, position) VALUES (?, ?, ?)",
			boardID, col.name, col.position,
		); err != nil {
			return err
		}
	}

	return nil
}
