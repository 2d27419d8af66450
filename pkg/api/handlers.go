package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hinterbergers/mycliniq-sub005/pkg/core/roster"
	"github.com/hinterbergers/mycliniq-sub005/pkg/core/services"
	"github.com/hinterbergers/mycliniq-sub005/pkg/db"
)

// lockRequest is the body of a lock upsert. A null employeeId pins the
// slot as explicitly left free.
type lockRequest struct {
	EmployeeID *string `json:"employeeId"`
}

func (s *Server) period(c *gin.Context) (roster.Period, bool) {
	period, err := services.ParsePeriod(c.Param("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return roster.Period{}, false
	}
	return period, true
}

func (s *Server) handleInputSummary(c *gin.Context) {
	period, ok := s.period(c)
	if !ok {
		return
	}

	summary, err := services.InputSummary(c.Request.Context(), s.store, s.catalog, s.logger, period)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) handleGetState(c *gin.Context) {
	period, ok := s.period(c)
	if !ok {
		return
	}

	state, err := services.GetState(c.Request.Context(), s.store, s.logger, period)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"lastRunAt":      state.LastRunAt,
		"isDirty":        state.IsDirty,
		"submittedCount": state.SubmittedCount,
		"missingCount":   state.MissingCount,
	})
}

func (s *Server) handleGetLocks(c *gin.Context) {
	period, ok := s.period(c)
	if !ok {
		return
	}

	locks, err := services.GetLocks(c.Request.Context(), s.store, s.logger, period)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, locks)
}

func (s *Server) handleUpsertLock(c *gin.Context) {
	period, ok := s.period(c)
	if !ok {
		return
	}

	var req lockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := services.UpsertLock(c.Request.Context(), s.store, s.logger, period, c.Param("slotID"), req.EmployeeID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDeleteLock(c *gin.Context) {
	period, ok := s.period(c)
	if !ok {
		return
	}

	err := services.DeleteLock(c.Request.Context(), s.store, s.logger, period, c.Param("slotID"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handlePreview(c *gin.Context) {
	period, ok := s.period(c)
	if !ok {
		return
	}

	result, err := services.Preview(c.Request.Context(), s.store, s.catalog, s.cfg, s.logger, period)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleRun(c *gin.Context) {
	period, ok := s.period(c)
	if !ok {
		return
	}

	result, err := services.Run(c.Request.Context(), s.store, s.catalog, s.cfg, s.logger, period)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleExport(c *gin.Context) {
	period, ok := s.period(c)
	if !ok {
		return
	}

	workbook, err := services.ExportRoster(c.Request.Context(), s.store, s.logger, period)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="roster_`+period.String()+`.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		s.logger.Error("Failed to stream workbook", zap.Error(err))
	}
}

// fail maps the service error taxonomy to HTTP status codes
func (s *Server) fail(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, db.ErrStaleLockVersion):
		c.JSON(http.StatusConflict, gin.H{"error": "lock set changed during the run, retry"})
	case errors.Is(err, db.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		s.logger.Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
