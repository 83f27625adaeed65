// README: API gateway; registers HTTP routes and delegates to the planner workflow.
package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripmate/internal/http/middleware"
	"tripmate/internal/planner"
	"tripmate/internal/session"
)

type ServerDeps struct {
	Workflow *planner.Workflow
	Store    session.Store
	Log      *zap.Logger
}

type Server struct {
	workflow *planner.Workflow
	store    session.Store
	log      *zap.Logger
	now      func() time.Time
}

func NewServer(deps ServerDeps) *Server {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		workflow: deps.Workflow,
		store:    deps.Store,
		log:      log,
		now:      time.Now,
	}
}

func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(s.log))
	r.Use(middleware.Logging(s.log))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type"},
	}))

	r.POST("/api/chat", s.HandleChat)
	r.GET("/api/chat/:id/history", s.HandleHistory)
	r.DELETE("/api/chat/:id", s.HandleDeleteSession)

	r.POST("/api/sessions", s.HandleCreateSession)
	r.GET("/api/sessions/:id", s.HandleGetSession)

	r.GET("/api/plan/:id", s.HandleGetPlan)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return r
}
