package http

import (
	"github.com/gin-gonic/gin"
)

// Server owns the engine built from a RouterConfig and the listener address.
type Server struct {
	Engine *gin.Engine
}

func NewServer(cfg RouterConfig) *Server {
	return &Server{Engine: NewRouter(cfg)}
}

// Run blocks serving requests on the given port.
func (s *Server) Run(port string) error {
	return s.Engine.Run(":" + port)
}
