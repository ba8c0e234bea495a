package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rvannatta/kanva/internal/models"
)

// Relation type values as stored in task_relations. Parent and child edges
// are the same row seen from opposite ends, so only one directed row kind
// exists on disk: (parent, child). Related rows are stored once with the
// lower ID first.
const (
	relationKindParentChild = "parent_child"
	relationKindRelated     = "related"
)

// TaskRepo provides task and relationship persistence backed by SQLite.
type TaskRepo struct {
	db *sql.DB
}

// GetTask retrieves a single task with its relationship sets populated.
func (r *TaskRepo) GetTask(ctx context.Context, id int) (*models.Task, error) {
	task, err := r.scanTask(r.db.QueryRowContext(ctx, taskSelect+` WHERE t.id = ?`, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadRelations(ctx, map[int]*models.Task{task.ID: task}); err != nil {
		return nil, err
	}
	return task, nil
}

// GetTasksByBoard retrieves all tasks on a board, ordered by column position
// then card position, with relationship sets populated.
func (r *TaskRepo) GetTasksByBoard(ctx context.Context, boardID int) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		taskSelect+` WHERE t.board_id = ? ORDER BY t.column_id, t.position`, boardID)
	if err != nil {
		return nil, err
	}
	return r.collectTasks(ctx, rows)
}

// GetAllTasks retrieves every task across all boards. The relationship
// validator needs the full graph, not just the visible board.
func (r *TaskRepo) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, taskSelect+` ORDER BY t.id`)
	if err != nil {
		return nil, err
	}
	return r.collectTasks(ctx, rows)
}

// CreateTask creates a task in the given column, appended at the end, and
// assigns it the board's next ticket number.
func (r *TaskRepo) CreateTask(ctx context.Context, boardID, columnID int, title, description string) (*models.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Ticket codes are assigned once from the owning board's counter and
	// stay stable if the task later moves to another board.
	var ticketNumber int
	var prefix string
	err = tx.QueryRowContext(ctx,
		`SELECT c.next_ticket_number, b.prefix
		 FROM board_counters c JOIN boards b ON b.id = c.board_id
		 WHERE c.board_id = ?`,
		boardID,
	).Scan(&ticketNumber, &prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to read ticket counter: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE board_counters SET next_ticket_number = next_ticket_number + 1
		 WHERE board_id = ?`, boardID); err != nil {
		return nil, err
	}

	var position int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE column_id = ?`, columnID,
	).Scan(&position)
	if err != nil {
		return nil, err
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO tasks (board_id, column_id, title, description, ticket_code, position)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		boardID, columnID, title, description,
		fmt.Sprintf("%s-%d", prefix, ticketNumber), position)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.GetTask(ctx, int(id))
}

// MoveTaskToBoard reassigns a task to the first column of the target board,
// appended at the end of that column.
func (r *TaskRepo) MoveTaskToBoard(ctx context.Context, taskID, targetBoardID int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var columnID int
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM columns WHERE board_id = ? ORDER BY position LIMIT 1`,
		targetBoardID,
	).Scan(&columnID)
	if err != nil {
		return fmt.Errorf("target board has no columns: %w", err)
	}

	var position int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE column_id = ?`, columnID,
	).Scan(&position)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE tasks
		 SET board_id = ?, column_id = ?, position = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		targetBoardID, columnID, position, taskID)
	if err != nil {
		return fmt.Errorf("failed to move task: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}

// AddRelation stores a relationship edge. Parent and child requests
// normalize to a single stored direction; related pairs are stored once
// with the lower ID first.
func (r *TaskRepo) AddRelation(ctx context.Context, sourceID, targetID int, relType models.RelationType) error {
	a, b, kind := normalizeRelation(sourceID, targetID, relType)
	if kind == "" {
		return fmt.Errorf("invalid relation type %v", relType)
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO task_relations (source_id, target_id, relation_type)
		 VALUES (?, ?, ?)`,
		a, b, kind)
	if err != nil {
		return fmt.Errorf("failed to add relation: %w", err)
	}
	return nil
}

// RemoveRelation deletes a relationship edge, matching the same
// normalization AddRelation applies.
func (r *TaskRepo) RemoveRelation(ctx context.Context, sourceID, targetID int, relType models.RelationType) error {
	a, b, kind := normalizeRelation(sourceID, targetID, relType)
	if kind == "" {
		return fmt.Errorf("invalid relation type %v", relType)
	}
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM task_relations
		 WHERE source_id = ? AND target_id = ? AND relation_type = ?`,
		a, b, kind)
	if err != nil {
		return fmt.Errorf("failed to remove relation: %w", err)
	}
	return nil
}

// normalizeRelation maps a typed edge request onto the stored row shape:
// (parent, child) for directed edges, (min, max) for related edges.
func normalizeRelation(sourceID, targetID int, relType models.RelationType) (int, int, string) {
	switch relType {
	case models.RelationChild:
		return sourceID, targetID, relationKindParentChild
	case models.RelationParent:
		return targetID, sourceID, relationKindParentChild
	case models.RelationRelated:
		if sourceID > targetID {
			sourceID, targetID = targetID, sourceID
		}
		return sourceID, targetID, relationKindRelated
	default:
		return 0, 0, ""
	}
}

const taskSelect = `
	SELECT t.id, t.board_id, t.column_id, t.title, t.description,
	       t.ticket_code, t.position, t.created_at, t.updated_at
	FROM tasks t`

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *TaskRepo) scanTask(row rowScanner) (*models.Task, error) {
	task := &models.Task{
		ParentIDs:  models.NewIDSet(),
		ChildIDs:   models.NewIDSet(),
		RelatedIDs: models.NewIDSet(),
	}
	var description sql.NullString
	err := row.Scan(
		&task.ID, &task.BoardID, &task.ColumnID, &task.Title, &description,
		&task.TicketCode, &task.Position, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	task.Description = description.String
	return task, nil
}

func (r *TaskRepo) collectTasks(ctx context.Context, rows *sql.Rows) ([]*models.Task, error) {
	defer rows.Close()

	byID := make(map[int]*models.Task)
	var tasks []*models.Task
	for rows.Next() {
		task, err := r.scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
		byID[task.ID] = task
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadRelations(ctx, byID); err != nil {
		return nil, err
	}
	return tasks, nil
}

// loadRelations fills the relationship sets of the given tasks. Edges whose
// other end is outside the map still populate the in-map side, so a board
// view sees cross-board relationships.
func (r *TaskRepo) loadRelations(ctx context.Context, byID map[int]*models.Task) error {
	if len(byID) == 0 {
		return nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT source_id, target_id, relation_type FROM task_relations`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var sourceID, targetID int
		var kind string
		if err := rows.Scan(&sourceID, &targetID, &kind); err != nil {
			return err
		}

		switch kind {
		case relationKindParentChild:
			// Stored as (parent, child)
			if parent, ok := byID[sourceID]; ok {
				parent.ChildIDs.Add(targetID)
			}
			if child, ok := byID[targetID]; ok {
				child.ParentIDs.Add(sourceID)
			}
		case relationKindRelated:
			if a, ok := byID[sourceID]; ok {
				a.RelatedIDs.Add(targetID)
			}
			if b, ok := byID[targetID]; ok {
				b.RelatedIDs.Add(sourceID)
			}
		}
	}
	return rows.Err()
}
