// Command trajectory reads a request JSON from a file argument (or stdin),
// runs one simulation and writes the result JSON to stdout.
//
//	{"kind": "batting", "batting": {"exit_velocity": 160, "launch_angle": 30}}
//	{"kind": "pitching", "pitching": {...}}
//	{"kind": "solve", "pitching": {...}, "target_x": 0, "target_y": 0.8}
//	{"kind": "edit", "pitching": {...}, "edit": {"kind": "gyro_degree", "degrees": 30}}
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/playmatatu/ballflight/internal/config"
	"github.com/playmatatu/ballflight/internal/editor"
	"github.com/playmatatu/ballflight/internal/flight"
	"github.com/playmatatu/ballflight/internal/models"
	"github.com/playmatatu/ballflight/internal/sim"
)

type request struct {
	Kind     string                     `json:"kind"`
	Batting  *flight.BattingParameters  `json:"batting,omitempty"`
	Pitching *flight.PitchingParameters `json:"pitching,omitempty"`
	TargetX  float64                    `json:"target_x"`
	TargetY  float64                    `json:"target_y"`
	Edit     *editor.Request            `json:"edit,omitempty"`
}

func main() {
	var (
		data []byte
		err  error
	)

	if len(os.Args) > 1 {
		data, err = os.ReadFile(os.Args[1])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading input: %v\n", err)
		os.Exit(1)
	}

	// Keep stdout clean for the JSON result.
	log.SetOutput(io.Discard)

	svc := sim.NewService(flight.NewEngine(config.Load().Constants()), nil)
	out, err := run(context.Background(), svc, data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(out))
}

func run(ctx context.Context, svc *sim.Service, data []byte) ([]byte, error) {
	var req request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	var (
		result any
		err    error
	)
	switch req.Kind {
	case models.KindBatting:
		if req.Batting == nil {
			return nil, fmt.Errorf("batting parameters required")
		}
		result, err = svc.Batting(ctx, *req.Batting)
	case models.KindPitching, models.KindSolve, models.KindEdit:
		if req.Pitching == nil {
			return nil, fmt.Errorf("pitching parameters required")
		}
		switch req.Kind {
		case models.KindPitching:
			result, err = svc.Pitching(ctx, *req.Pitching)
		case models.KindSolve:
			result, err = svc.Solve(ctx, models.SolveRequest{Params: *req.Pitching, TargetX: req.TargetX, TargetY: req.TargetY})
		default:
			if req.Edit == nil {
				return nil, fmt.Errorf("edit required")
			}
			result, err = svc.Edit(ctx, models.EditRequest{Params: *req.Pitching, Edit: *req.Edit})
		}
	default:
		return nil, fmt.Errorf("unknown kind %q", req.Kind)
	}
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(result, "", "  ")
}
