package ws

import "net/http"

func httpHandler(p *Player) http.Handler {
	return http.HandlerFunc(p.Serve)
}
