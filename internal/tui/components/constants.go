package components

const (
	// TaskCardHeight is the fixed height of a task card including its border
	TaskCardHeight = 5
	// TaskCardWidth is the fixed width of a task card between its borders
	TaskCardWidth = 36
	// ColumnWidth is the fixed width of a column between its borders; the
	// rendered column is two cells wider
	ColumnWidth = 40
	// TabBarHeight is the number of rows the tab bar occupies
	TabBarHeight = 3
	// StatusBarHeight is the number of rows the status bar occupies
	StatusBarHeight = 1

	taskTitleMaxLength = 28 // Maximum display length for task title before truncation

	// LinkHandle is the glyph on a card's right edge that starts a linking
	// drag when pressed
	LinkHandle = "◉"
)
