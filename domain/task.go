package domain

import "strings"

// Sheet column order. Row 1 of the sheet is the header.
const (
	colID = iota
	colTitle
	colContent
	colDue
	colTags
	colReminder

	// ColumnCount is the fixed width of a task row.
	ColumnCount = 6
)

const headerToken = "id"

// HeaderRow returns the fixed header row of the tasks sheet.
func HeaderRow() []string {
	return []string{"id", "title", "content", "due", "tags", "reminder"}
}

// Task is a single tracked item, stored as one sheet row.
type Task struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content,omitempty"`
	Due      string `json:"due,omitempty"`
	Tags     string `json:"tags,omitempty"`
	Reminder string `json:"reminder,omitempty"`
}

// TaskFromRow builds a Task from a raw sheet row. Short rows are padded
// with empty cells, extra cells are dropped.
func TaskFromRow(row []string) Task {
	cells := make([]string, ColumnCount)
	copy(cells, row)
	return Task{
		ID:       cells[colID],
		Title:    cells[colTitle],
		Content:  cells[colContent],
		Due:      cells[colDue],
		Tags:     cells[colTags],
		Reminder: cells[colReminder],
	}
}

// Row is the inverse of TaskFromRow: fixed column order, no validation.
func (t Task) Row() []string {
	return []string{t.ID, t.Title, t.Content, t.Due, t.Tags, t.Reminder}
}

// TasksFromRows maps the full sheet contents, header included, to tasks.
// Row 1 is dropped, as is any row whose first cell is blank or a repeated
// header token. Sheet order is preserved.
func TasksFromRows(rows [][]string) []Task {
	tasks := []Task{}
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) == 0 || strings.TrimSpace(row[colID]) == "" || row[colID] == headerToken {
			continue
		}
		tasks = append(tasks, TaskFromRow(row))
	}
	return tasks
}

// TagList splits the stored comma-separated tags into trimmed non-empty
// values. Tags are stored verbatim; this is the only place they are split.
func (t Task) TagList() []string {
	if t.Tags == "" {
		return nil
	}
	var out []string
	for _, tag := range strings.Split(t.Tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
