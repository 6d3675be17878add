// Package server implements the HTTP adapter over the task, group and tag
// stores. It only parses requests and serializes results; every invariant
// lives in internal/store.
package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/models"
)

// Store is the surface of internal/store the handlers call.
type Store interface {
	CreateTask(in models.TaskCreate) (*models.Task, error)
	GetTask(id string) (*models.Task, error)
	ListTasks() ([]models.Task, error)
	ListTasksToday() ([]models.Task, error)
	ListTasksUpcoming() ([]models.Task, error)
	ListTasksPending() ([]models.Task, error)
	ListTasksCompleted() ([]models.Task, error)
	ListTasksByGroup(groupID string) ([]models.Task, error)
	ListTasksByTag(tagID string) ([]models.Task, error)
	UpdateTask(id string, in models.TaskUpdate) (*models.Task, error)
	DeleteTask(id string) error

	CreateGroup(in models.GroupCreate) (*models.Group, error)
	ListGroups() ([]models.Group, error)
	DeleteGroup(id string) error

	CreateTag(in models.TagCreate) (*models.Tag, error)
	ListTags() ([]models.Tag, error)
	UpdateTag(id string, in models.TagUpdate) (*models.Tag, error)
	DeleteTag(id string) error

	Counts() (*models.Counts, error)
	SummaryCounts() (*models.SummaryCounts, error)
}

// Server is the taskboard web server
type Server struct {
	store  Store
	logger *slog.Logger
	router *gin.Engine
}

// New creates a new web server with all routes registered.
func New(st Store, logger *slog.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		store:  st,
		logger: logger,
		router: router,
	}

	router.GET("/health", s.handleHealth)

	// GET /tasks/* serves both named views (today, counts, ...) and task
	// ids from the same segment, so one parameterized route dispatches on
	// the reserved names. Ids are uuids and cannot collide with them.
	router.GET("/tasks", s.handleListTasks)
	router.POST("/tasks", s.handleCreateTask)
	router.GET("/tasks/:id", s.handleGetTasksSegment)
	router.GET("/tasks/:id/:sub", s.handleGetTasksSubSegment)
	router.PUT("/tasks/:id", s.handleUpdateTask)
	router.DELETE("/tasks/:id", s.handleDeleteTask)

	router.GET("/groups", s.handleListGroups)
	router.POST("/groups", s.handleCreateGroup)
	router.DELETE("/groups/:id", s.handleDeleteGroup)
	router.GET("/groups/:id/tasks", s.handleListByGroup)

	router.GET("/tags", s.handleListTags)
	router.POST("/tags", s.handleCreateTag)
	router.PUT("/tags/:id", s.handleUpdateTag)
	router.DELETE("/tags/:id", s.handleDeleteTag)

	return s
}

// Handler exposes the router for http.Server and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
