package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/models"
	"taskboard/internal/store"
)

// writeError maps store error kinds to HTTP status codes. Storage failures
// are logged and reported without driver detail.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		s.logger.Error("storage error", slog.String("path", c.FullPath()), slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	counts, err := s.store.SummaryCounts()
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "tasks_count": counts.Total})
}

// Task handlers

// handleGetTasksSegment serves GET /tasks/<x>: the named views and the
// aggregate counts by their reserved names, anything else as a task id.
func (s *Server) handleGetTasksSegment(c *gin.Context) {
	switch c.Param("id") {
	case "today":
		s.listTasks(c, s.store.ListTasksToday)
	case "upcoming":
		s.listTasks(c, s.store.ListTasksUpcoming)
	case "pending":
		s.listTasks(c, s.store.ListTasksPending)
	case "completed":
		s.listTasks(c, s.store.ListTasksCompleted)
	case "counts":
		s.handleCounts(c)
	default:
		s.handleGetTask(c)
	}
}

// handleGetTasksSubSegment serves GET /tasks/<x>/<y>: the counts summary and
// the by-tag view.
func (s *Server) handleGetTasksSubSegment(c *gin.Context) {
	switch {
	case c.Param("id") == "counts" && c.Param("sub") == "summary":
		s.handleCountsSummary(c)
	case c.Param("id") == "tag":
		s.handleListByTag(c)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	}
}

func (s *Server) handleListTasks(c *gin.Context) {
	s.listTasks(c, s.store.ListTasks)
}

func (s *Server) handleListByTag(c *gin.Context) {
	tagID := c.Param("sub")
	s.listTasks(c, func() ([]models.Task, error) { return s.store.ListTasksByTag(tagID) })
}

func (s *Server) handleListByGroup(c *gin.Context) {
	groupID := c.Param("id")
	s.listTasks(c, func() ([]models.Task, error) { return s.store.ListTasksByGroup(groupID) })
}

func (s *Server) listTasks(c *gin.Context, list func() ([]models.Task, error)) {
	tasks, err := list()
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var in models.TaskCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task, err := s.store.CreateTask(in)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (s *Server) handleGetTask(c *gin.Context) {
	task, err := s.store.GetTask(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	var in models.TaskUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task, err := s.store.UpdateTask(c.Param("id"), in)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	if err := s.store.DeleteTask(c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func (s *Server) handleCounts(c *gin.Context) {
	counts, err := s.store.Counts()
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (s *Server) handleCountsSummary(c *gin.Context) {
	counts, err := s.store.SummaryCounts()
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// Group handlers

func (s *Server) handleListGroups(c *gin.Context) {
	groups, err := s.store.ListGroups()
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

func (s *Server) handleCreateGroup(c *gin.Context) {
	var in models.GroupCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	group, err := s.store.CreateGroup(in)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

func (s *Server) handleDeleteGroup(c *gin.Context) {
	if err := s.store.DeleteGroup(c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Group deleted successfully"})
}

// Tag handlers

func (s *Server) handleListTags(c *gin.Context) {
	tags, err := s.store.ListTags()
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

func (s *Server) handleCreateTag(c *gin.Context) {
	var in models.TagCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	tag, err := s.store.CreateTag(in)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func (s *Server) handleUpdateTag(c *gin.Context) {
	var in models.TagUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	tag, err := s.store.UpdateTag(c.Param("id"), in)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (s *Server) handleDeleteTag(c *gin.Context) {
	if err := s.store.DeleteTag(c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted successfully"})
}
