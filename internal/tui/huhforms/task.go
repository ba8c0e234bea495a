package huhforms

import "charm.land/huh/v2"

// CreateTaskForm creates a huh form for adding a new task to the current
// board's selected column.
func CreateTaskForm(
	title *string,
	description *string,
	confirm *bool,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Task Title").
			Placeholder("Enter task title...").
			Value(title),

		huh.NewText().
			Key("description").
			Title("Description (optional, markdown)").
			Placeholder("Enter task description...").
			CharLimit(2000).
			Lines(4).
			Value(description),

		huh.NewConfirm().
			Key("confirm").
			Title("Create this task?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter())
}
