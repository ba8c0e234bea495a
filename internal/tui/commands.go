package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/rvannatta/kanva/internal/models"
	"github.com/rvannatta/kanva/internal/services/task"
	"github.com/rvannatta/kanva/internal/tui/state"
)

// reloadCmd loads a fresh snapshot for the given board index.
func (m Model) reloadCmd(boardIdx int) tea.Cmd {
	return func() tea.Msg {
		return m.loadData(boardIdx)
	}
}

// createRelationCmd issues the persistence call for a finished link gesture.
// The message carries the gesture generation so a cancelled gesture's
// completion is dropped.
func (m Model) createRelationCmd(generation uuid.UUID, source, target *models.Task, relType models.RelationType) tea.Cmd {
	return func() tea.Msg {
		err := m.taskSvc.CreateRelation(m.ctx, source.ID, target.ID, relType)
		return linkResolvedMsg{
			generation: generation,
			source:     source,
			target:     target,
			err:        err,
		}
	}
}

// moveTaskCmd issues the persistence call for a completed cross-board drop.
func (m Model) moveTaskCmd(generation uuid.UUID, t *models.Task, boardID int) tea.Cmd {
	return func() tea.Msg {
		err := m.taskSvc.MoveTaskToBoard(m.ctx, t.ID, boardID)
		return moveResolvedMsg{
			generation: generation,
			task:       t,
			boardID:    boardID,
			err:        err,
		}
	}
}

// createTaskCmd issues the persistence call for the add-task form.
func (m Model) createTaskCmd(req task.CreateTaskRequest) tea.Cmd {
	return func() tea.Msg {
		created, err := m.taskSvc.CreateTask(m.ctx, req)
		return taskCreatedMsg{task: created, err: err}
	}
}

// hoverClearCmd schedules the debounced hover clear for a tab the dragged
// card just left.
func (m Model) hoverClearCmd(boardID, seq int) tea.Cmd {
	return tea.Tick(m.dropState.Debounce(), func(time.Time) tea.Msg {
		return hoverClearMsg{boardID: boardID, seq: seq}
	})
}

// dropReadyCmd schedules a re-render for when the hovered tab's dwell may
// have elapsed.
func (m Model) dropReadyCmd(boardID int) tea.Cmd {
	return tea.Tick(m.dropState.Dwell(), func(time.Time) tea.Msg {
		return dropReadyTickMsg{boardID: boardID}
	})
}

// showFeedback publishes a notification and schedules its expiry.
func (m *Model) showFeedback(category state.FeedbackCategory, message string) tea.Cmd {
	seq := m.notificationState.Show(category, message)
	return tea.Tick(m.config.Timings.FeedbackDuration(), func(time.Time) tea.Msg {
		return feedbackExpiredMsg{seq: seq}
	})
}
