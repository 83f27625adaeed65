// README: Session lifecycle and finished-plan endpoints.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripmate/internal/planner"
	"tripmate/internal/session"
)

// HandleCreateSession creates an empty session and returns its state.
func (s *Server) HandleCreateSession(c *gin.Context) {
	st := planner.NewState(uuid.NewString(), s.now())
	if err := s.store.Save(c.Request.Context(), st); err != nil {
		s.log.Error("save session", zap.String("session_id", st.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"session_id": st.SessionID,
		"state":      st,
	})
}

// HandleGetSession returns the current state snapshot with progress.
func (s *Server) HandleGetSession(c *gin.Context) {
	st, ok := s.mustLoad(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id": st.SessionID,
		"state":      st,
		"progress":   progressOf(st),
	})
}

// HandleDeleteSession removes a session.
func (s *Server) HandleDeleteSession(c *gin.Context) {
	id := c.Param("id")
	err := s.store.Delete(c.Request.Context(), id)
	if errors.Is(err, session.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	if err != nil {
		s.log.Error("delete session", zap.String("session_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// HandleGetPlan returns the finished plan. 409 until the workflow is done.
func (s *Server) HandleGetPlan(c *gin.Context) {
	st, ok := s.mustLoad(c)
	if !ok {
		return
	}
	if st.CurrentStep != planner.StepDone {
		c.JSON(http.StatusConflict, gin.H{
			"error":        "plan is not ready yet",
			"current_step": st.CurrentStep,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id": st.SessionID,
		"flights":    st.FlightOptions,
		"hotels":     st.HotelOptions,
		"itinerary":  st.Itinerary,
		"summary":    planner.BuildSummary(st),
	})
}
