package domain

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// RowStore is the positional sheet access the services need. Row numbers
// are 1-based and include the header as row 1. Deleting a row shifts the
// rows below it up by one, so row numbers must not be cached across calls.
type RowStore interface {
	ReadRows(ctx context.Context) ([][]string, error)
	AppendRow(ctx context.Context, row []string) error
	UpdateRow(ctx context.Context, rowNum int, row []string) error
	DeleteRow(ctx context.Context, rowNum int) error
}

const headerRows = 1

// TaskInput carries the writable task fields of a form submission.
type TaskInput struct {
	Title    string
	Content  string
	Due      string
	Tags     string
	Reminder string
}

// TaskView is a Task annotated for display.
type TaskView struct {
	Task
	Status    Status `json:"status"`
	ShortDue  string `json:"shortDue,omitempty"`
	IsOverdue bool   `json:"isOverdue"`
}

// TaskService orchestrates sheet reads and writes for the web surface.
// Every call re-reads the full table; nothing is cached.
type TaskService struct {
	store RowStore
	log   *log.Logger
}

func NewTaskService(store RowStore, logger *log.Logger) *TaskService {
	return &TaskService{store: store, log: logger}
}

// List returns every task annotated with its due status, dated tasks
// first in due-date order, undated tasks last in sheet order.
func (s *TaskService) List(ctx context.Context) ([]TaskView, error) {
	rows, err := s.store.ReadRows(ctx)
	if err != nil {
		return nil, err
	}
	tasks := TasksFromRows(rows)
	today := time.Now()
	views := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		v := TaskView{Task: t, Status: Classify(t.Due, today)}
		if d, ok := ParseDue(t.Due); ok {
			v.ShortDue = d.Format("01/02")
		}
		v.IsOverdue = v.Status == StatusOverdue
		views = append(views, v)
	}
	sort.SliceStable(views, func(i, j int) bool {
		di, iok := ParseDue(views[i].Due)
		dj, jok := ParseDue(views[j].Due)
		switch {
		case iok && jok:
			return di.Before(dj)
		case iok:
			return true
		default:
			return false
		}
	})
	return views, nil
}

// Create validates the input, assigns a fresh id and appends a new row.
// The title is stored verbatim; only the blank check trims it.
func (s *TaskService) Create(ctx context.Context, in TaskInput) (Task, error) {
	if strings.TrimSpace(in.Title) == "" {
		return Task{}, ErrTitleRequired
	}
	t := Task{
		ID:       uuid.NewString(),
		Title:    in.Title,
		Content:  in.Content,
		Due:      in.Due,
		Tags:     in.Tags,
		Reminder: in.Reminder,
	}
	if err := s.store.AppendRow(ctx, t.Row()); err != nil {
		return Task{}, err
	}
	s.log.WithFields(log.Fields{"task": t.ID, "due": t.Due}).Info("task created")
	return t, nil
}

// Get returns the task with the given id.
func (s *TaskService) Get(ctx context.Context, id string) (Task, error) {
	t, _, err := s.findRow(ctx, id)
	return t, err
}

// Update overwrites all six cells of the row whose id matches. Fields
// omitted from the input become empty cells; the id never changes.
func (s *TaskService) Update(ctx context.Context, id string, in TaskInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrTitleRequired
	}
	_, rowNum, err := s.findRow(ctx, id)
	if err != nil {
		return err
	}
	t := Task{
		ID:       id,
		Title:    in.Title,
		Content:  in.Content,
		Due:      in.Due,
		Tags:     in.Tags,
		Reminder: in.Reminder,
	}
	if err := s.store.UpdateRow(ctx, rowNum, t.Row()); err != nil {
		return err
	}
	s.log.WithField("task", id).Info("task updated")
	return nil
}

// Delete removes the row whose id matches.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	_, rowNum, err := s.findRow(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteRow(ctx, rowNum); err != nil {
		return err
	}
	s.log.WithField("task", id).Info("task deleted")
	return nil
}

// DeleteAt removes a row addressed by its 0-based display index, the
// legacy addressing of the delete route. Display index 0 is sheet row 2.
func (s *TaskService) DeleteAt(ctx context.Context, index int) error {
	if index < 0 {
		return ErrNotFound
	}
	rows, err := s.store.ReadRows(ctx)
	if err != nil {
		return err
	}
	rowNum := index + headerRows + 1
	if rowNum > len(rows) {
		return ErrNotFound
	}
	if err := s.store.DeleteRow(ctx, rowNum); err != nil {
		return err
	}
	s.log.WithField("row", rowNum).Info("task deleted by index")
	return nil
}

// findRow scans the sheet top to bottom for the first row whose id cell
// matches and returns the task with its 1-based row number.
func (s *TaskService) findRow(ctx context.Context, id string) (Task, int, error) {
	if id == "" {
		return Task{}, 0, ErrNotFound
	}
	rows, err := s.store.ReadRows(ctx)
	if err != nil {
		return Task{}, 0, err
	}
	for i, row := range rows {
		if i < headerRows || len(row) == 0 {
			continue
		}
		if row[colID] == id {
			return TaskFromRow(row), i + 1, nil
		}
	}
	return Task{}, 0, ErrNotFound
}
