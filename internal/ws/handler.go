package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/playmatatu/ballflight/internal/models"
	"github.com/playmatatu/ballflight/internal/sim"
)

const (
	writeWait       = 10 * time.Second
	requestWait     = 30 * time.Second
	maxMessageBytes = 65536
)

// Player streams precomputed trajectories to websocket clients at a fixed
// frame rate. Each connection plays exactly one run.
type Player struct {
	svc      *sim.Service
	fps      int
	upgrader websocket.Upgrader
}

// NewPlayer creates a player. checkOrigin may be nil to accept any origin.
func NewPlayer(svc *sim.Service, fps int, checkOrigin func(*http.Request) bool) *Player {
	if fps <= 0 {
		fps = 60
	}
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool { return true }
	}
	return &Player{
		svc: svc,
		fps: fps,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     checkOrigin,
		},
	}
}

// session is one playback connection. Only play writes to conn; readLoop
// only reads.
type session struct {
	conn     *websocket.Conn
	stop     chan struct{}
	stopOnce sync.Once
}

func (s *session) halt() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Serve upgrades the request and plays one run.
func (p *Player) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := p.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	s := &session{conn: conn, stop: make(chan struct{})}
	conn.SetReadLimit(maxMessageBytes)

	conn.SetReadDeadline(time.Now().Add(requestWait))
	var req models.PlaybackRequest
	if err := conn.ReadJSON(&req); err != nil {
		log.Printf("[WS] no playback request: %v", err)
		return
	}
	conn.SetReadDeadline(time.Time{})

	run, err := p.resolve(r.Context(), req)
	if err != nil {
		s.sendError(err.Error())
		s.close(websocket.CloseUnsupportedData, "bad request")
		return
	}

	go s.readLoop()
	frames, stopped := s.play(run, playbackSpeed(req.Speed), time.Second/time.Duration(p.fps))
	log.Printf("[WS] run %s: sent %d frames (stopped=%v)", run.RunID, frames, stopped)
}

func (p *Player) resolve(ctx context.Context, req models.PlaybackRequest) (models.RunEnvelope, error) {
	switch req.Kind {
	case models.KindBatting:
		if req.Batting == nil {
			return models.RunEnvelope{}, errors.New("batting parameters required")
		}
		return p.svc.Batting(ctx, *req.Batting)
	case models.KindPitching:
		if req.Pitching == nil {
			return models.RunEnvelope{}, errors.New("pitching parameters required")
		}
		return p.svc.Pitching(ctx, *req.Pitching)
	}
	return models.RunEnvelope{}, fmt.Errorf("unknown kind %q", req.Kind)
}

// readLoop watches for a stop request or the client going away.
func (s *session) readLoop() {
	defer s.halt()
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] read error: %v", err)
			}
			return
		}
		var msg models.ClientMessage
		if json.Unmarshal(data, &msg) == nil && msg.Type == models.MsgStop {
			return
		}
	}
}

// play sends one frame per tick for the sample the playback clock has
// reached, then a summary. It returns the frame count and whether the
// client stopped playback early.
func (s *session) play(run models.RunEnvelope, speed float64, interval time.Duration) (int, bool) {
	points := run.Result.Points
	last := len(points) - 1
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()
	frames, sent := 0, -1
	stopped := false
	for sent < last && !stopped {
		idx := FrameIndex(time.Since(start), speed, run.Result.Step, len(points))
		if idx > sent {
			if err := s.write(models.PlaybackFrame{Type: models.MsgFrame, RunID: run.RunID, Index: idx, Sample: points[idx]}); err != nil {
				log.Printf("[WS] frame write failed for run %s: %v", run.RunID, err)
				return frames, true
			}
			sent = idx
			frames++
			if sent == last {
				break
			}
		}
		select {
		case <-s.stop:
			stopped = true
		case <-ticker.C:
		}
	}

	summary := models.PlaybackSummary{Type: models.MsgSummary, RunID: run.RunID, Frames: frames, Stopped: stopped, Result: run.Result}
	if err := s.write(summary); err != nil {
		log.Printf("[WS] summary write failed for run %s: %v", run.RunID, err)
	}
	s.close(websocket.CloseNormalClosure, "")
	return frames, stopped
}

func (s *session) write(v any) error {
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(v)
}

func (s *session) sendError(message string) {
	if err := s.write(map[string]string{"type": models.MsgError, "message": message}); err != nil {
		log.Printf("[WS] error message write failed: %v", err)
	}
}

func (s *session) close(code int, text string) {
	msg := websocket.FormatCloseMessage(code, text)
	if err := s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait)); err != nil {
		log.Printf("[WS] close frame write failed: %v", err)
	}
}

// FrameIndex maps wall-clock playback time onto a sample index using the
// step the trajectory was computed with.
func FrameIndex(elapsed time.Duration, speed, step float64, n int) int {
	if n <= 0 {
		return -1
	}
	if step <= 0 {
		return n - 1
	}
	idx := int(math.Floor(elapsed.Seconds() * speed / step))
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}

func playbackSpeed(s float64) float64 {
	if s <= 0 || math.IsNaN(s) {
		return 1
	}
	return math.Min(s, 1000)
}
