package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/playmatatu/ballflight/internal/ws"
)

// HandlePlayback streams a trajectory over a websocket.
func HandlePlayback(p *ws.Player) gin.HandlerFunc {
	return func(c *gin.Context) {
		p.Serve(c.Writer, c.Request)
	}
}
