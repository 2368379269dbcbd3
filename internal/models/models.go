package models

import (
	"time"

	"github.com/playmatatu/ballflight/internal/editor"
	"github.com/playmatatu/ballflight/internal/flight"
)

// Request kinds shared by the API, playback and the CLI.
const (
	KindBatting  = "batting"
	KindPitching = "pitching"
	KindSolve    = "solve"
	KindEdit     = "edit"
)

// RunEnvelope wraps every computed trajectory returned by the API.
type RunEnvelope struct {
	RunID      string                  `json:"run_id"`
	Kind       string                  `json:"kind"`
	Cached     bool                    `json:"cached"`
	ComputedAt time.Time               `json:"computed_at"`
	Result     flight.TrajectoryResult `json:"result"`
}

// SolveRequest asks for the angles that hit a plate target.
type SolveRequest struct {
	Params  flight.PitchingParameters `json:"params"`
	TargetX float64                   `json:"target_x"`
	TargetY float64                   `json:"target_y"`
}

// SolveResponse carries the solution and the params with it applied.
type SolveResponse struct {
	Solution flight.AngleSolution      `json:"solution"`
	Params   flight.PitchingParameters `json:"params"`
	Cached   bool                      `json:"cached"`
}

// EditRequest applies one edit to a full pitch state.
type EditRequest struct {
	Params flight.PitchingParameters `json:"params"`
	Edit   editor.Request            `json:"edit"`
}

// EditResponse is the reduced state and its forward simulation.
type EditResponse struct {
	Params flight.PitchingParameters `json:"params"`
	Run    RunEnvelope               `json:"run"`
}

// ConstantsResponse describes the physics the server runs with.
type ConstantsResponse struct {
	Constants flight.Constants     `json:"constants"`
	Fence     []flight.WallSegment `json:"fence"`
}

// PlaybackRequest is the first message a playback client sends.
type PlaybackRequest struct {
	Kind     string                     `json:"kind"`
	Batting  *flight.BattingParameters  `json:"batting,omitempty"`
	Pitching *flight.PitchingParameters `json:"pitching,omitempty"`
	Speed    float64                    `json:"speed"`
}

// Playback message types.
const (
	MsgFrame   = "frame"
	MsgSummary = "summary"
	MsgError   = "error"
	MsgStop    = "stop"
)

// PlaybackFrame is one sampled point pushed during playback.
type PlaybackFrame struct {
	Type   string        `json:"type"`
	RunID  string        `json:"run_id"`
	Index  int           `json:"index"`
	Sample flight.Sample `json:"sample"`
}

// PlaybackSummary ends a playback stream.
type PlaybackSummary struct {
	Type    string                  `json:"type"`
	RunID   string                  `json:"run_id"`
	Frames  int                     `json:"frames"`
	Stopped bool                    `json:"stopped"`
	Result  flight.TrajectoryResult `json:"result"`
}

// ClientMessage is anything a playback client sends after the request.
type ClientMessage struct {
	Type string `json:"type"`
}
