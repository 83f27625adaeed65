// README: Chat endpoint; one request per user turn, session created on demand.
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

type chatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Reply      string             `json:"reply"`
	SessionID  string             `json:"session_id"`
	State      *planner.TripState `json:"state"`
	Progress   progress           `json:"progress"`
	IsComplete bool               `json:"is_complete"`
}

// HandleChat appends the user message, runs one workflow turn, persists the
// merged patch, and returns the assistant reply with a state snapshot.
func (s *Server) HandleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	st, err := s.loadOrCreate(c, req.SessionID)
	if err != nil {
		s.log.Error("load session", zap.String("session_id", req.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return
	}

	now := s.now()
	st.AppendUserMessage(req.Message, now)

	patch := s.workflow.ProcessTurn(c.Request.Context(), st)
	st.Apply(patch, now)

	if err := s.store.Save(c.Request.Context(), st); err != nil {
		s.log.Error("save session", zap.String("session_id", st.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}

	c.JSON(http.StatusOK, chatResponse{
		Reply:      st.LastReply(),
		SessionID:  st.SessionID,
		State:      st,
		Progress:   progressOf(st),
		IsComplete: st.CurrentStep == planner.StepDone,
	})
}

// HandleHistory returns the full message log of a session.
func (s *Server) HandleHistory(c *gin.Context) {
	st, ok := s.mustLoad(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id": st.SessionID,
		"messages":   st.Messages,
	})
}

// loadOrCreate resolves the session for a chat turn. An unknown id becomes
// a fresh session under that id; an empty id gets a new uuid.
func (s *Server) loadOrCreate(c *gin.Context, id string) (*planner.TripState, error) {
	if id == "" {
		return planner.NewState(uuid.NewString(), s.now()), nil
	}
	st, err := s.store.Load(c.Request.Context(), id)
	if errors.Is(err, session.ErrNotFound) {
		return planner.NewState(id, s.now()), nil
	}
	return st, err
}

// mustLoad fetches the :id session or writes a 404/500 and reports false.
func (s *Server) mustLoad(c *gin.Context) (*planner.TripState, bool) {
	id := c.Param("id")
	st, err := s.store.Load(c.Request.Context(), id)
	if errors.Is(err, session.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	if err != nil {
		s.log.Error("load session", zap.String("session_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return nil, false
	}
	return st, true
}
