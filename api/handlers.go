package api

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"todosheet/domain"
)

const (
	msgTitleRequired = "タイトルを入力してください"
	msgNotFound      = "タスクが見つかりませんでした"
)

// Register wires up all routes on the provided Echo instance.
func Register(e *echo.Echo, svc TaskService, reminder Reminder, logger *log.Logger) {
	e.Renderer = newRenderer()

	e.GET("/", index(svc, logger))
	e.POST("/add", addTask(svc))
	e.GET("/edit/:id", editTask(svc))
	e.POST("/update/:id", updateTask(svc))
	e.POST("/delete/:id", deleteTask(svc))
	e.POST("/delete-at/:index", deleteTaskAt(svc))
	e.POST("/remind", remind(reminder))
	e.GET("/api/tasks", listTasks(svc, logger))
	e.GET("/healthz", healthz())
}

type listPage struct {
	Tasks []domain.TaskView
	Flash string
}

type tasksResponse struct {
	Tasks []domain.TaskView `json:"tasks"`
}

func healthz() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
}

func index(svc TaskService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		tasks, err := svc.List(c.Request().Context())
		if err != nil {
			logger.WithError(err).Error("list tasks")
			return c.String(http.StatusInternalServerError, "failed to load tasks")
		}
		return c.Render(http.StatusOK, "index.html", listPage{Tasks: tasks, Flash: c.QueryParam("msg")})
	}
}

func listTasks(svc TaskService, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		tasks, err := svc.List(c.Request().Context())
		if err != nil {
			logger.WithError(err).Error("list tasks")
			return c.String(http.StatusInternalServerError, "failed to load tasks")
		}
		return c.JSON(http.StatusOK, tasksResponse{Tasks: tasks})
	}
}

func addTask(svc TaskService) echo.HandlerFunc {
	return func(c echo.Context) error {
		_, err := svc.Create(c.Request().Context(), formInput(c))
		switch {
		case errors.Is(err, domain.ErrTitleRequired):
			return redirectWithFlash(c, msgTitleRequired)
		case err != nil:
			c.Logger().Error(err)
			return c.String(http.StatusInternalServerError, "failed to save task")
		}
		return redirectWithFlash(c, "")
	}
}

func editTask(svc TaskService) echo.HandlerFunc {
	return func(c echo.Context) error {
		task, err := svc.Get(c.Request().Context(), c.Param("id"))
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return redirectWithFlash(c, msgNotFound)
		case err != nil:
			c.Logger().Error(err)
			return c.String(http.StatusInternalServerError, "failed to load task")
		}
		return c.Render(http.StatusOK, "edit.html", task)
	}
}

func updateTask(svc TaskService) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := svc.Update(c.Request().Context(), c.Param("id"), formInput(c))
		switch {
		case errors.Is(err, domain.ErrTitleRequired):
			return redirectWithFlash(c, msgTitleRequired)
		case errors.Is(err, domain.ErrNotFound):
			return redirectWithFlash(c, msgNotFound)
		case err != nil:
			c.Logger().Error(err)
			return c.String(http.StatusInternalServerError, "failed to save task")
		}
		return redirectWithFlash(c, "")
	}
}

func deleteTask(svc TaskService) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := svc.Delete(c.Request().Context(), c.Param("id"))
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return redirectWithFlash(c, msgNotFound)
		case err != nil:
			c.Logger().Error(err)
			return c.String(http.StatusInternalServerError, "failed to delete task")
		}
		return redirectWithFlash(c, "")
	}
}

// deleteTaskAt is the legacy delete route, addressed by 0-based display
// index instead of task id.
func deleteTaskAt(svc TaskService) echo.HandlerFunc {
	return func(c echo.Context) error {
		index, convErr := strconv.Atoi(c.Param("index"))
		if convErr != nil {
			return redirectWithFlash(c, msgNotFound)
		}
		err := svc.DeleteAt(c.Request().Context(), index)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return redirectWithFlash(c, msgNotFound)
		case err != nil:
			c.Logger().Error(err)
			return c.String(http.StatusInternalServerError, "failed to delete task")
		}
		return redirectWithFlash(c, "")
	}
}

func remind(reminder Reminder) echo.HandlerFunc {
	return func(c echo.Context) error {
		if reminder.Run(c.Request().Context()) {
			return c.String(http.StatusOK, "reminder sent")
		}
		return c.String(http.StatusOK, "reminder not sent")
	}
}

func formInput(c echo.Context) domain.TaskInput {
	return domain.TaskInput{
		Title:    c.FormValue("title"),
		Content:  c.FormValue("content"),
		Due:      c.FormValue("due"),
		Tags:     c.FormValue("tags"),
		Reminder: c.FormValue("reminder"),
	}
}

func redirectWithFlash(c echo.Context, msg string) error {
	target := "/"
	if msg != "" {
		target = "/?msg=" + url.QueryEscape(msg)
	}
	return c.Redirect(http.StatusSeeOther, target)
}
