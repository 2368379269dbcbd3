// Package sim runs engine calls for the service layer: it validates input,
// consults the result cache and stamps each run with an ID.
package sim

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/playmatatu/ballflight/internal/cache"
	"github.com/playmatatu/ballflight/internal/editor"
	"github.com/playmatatu/ballflight/internal/flight"
	"github.com/playmatatu/ballflight/internal/models"
)

// Service is safe for concurrent use.
type Service struct {
	engine *flight.Engine
	cache  *cache.Store
	now    func() time.Time
}

// NewService wires an engine to an optional cache (nil disables it).
func NewService(engine *flight.Engine, store *cache.Store) *Service {
	return &Service{engine: engine, cache: store, now: time.Now}
}

// Engine returns the engine runs are computed with.
func (s *Service) Engine() *flight.Engine { return s.engine }

// Batting simulates a batted ball.
func (s *Service) Batting(ctx context.Context, p flight.BattingParameters) (models.RunEnvelope, error) {
	if err := ValidateBatting(p); err != nil {
		return models.RunEnvelope{}, err
	}
	return s.run(ctx, models.KindBatting, p, func() flight.TrajectoryResult {
		return s.engine.SimulateBattedBall(p)
	})
}

// Pitching simulates a pitch.
func (s *Service) Pitching(ctx context.Context, p flight.PitchingParameters) (models.RunEnvelope, error) {
	if err := ValidatePitching(p); err != nil {
		return models.RunEnvelope{}, err
	}
	return s.run(ctx, models.KindPitching, p, func() flight.TrajectoryResult {
		return s.engine.SimulatePitch(p)
	})
}

// Solve aims p at the target and returns the solution with p updated.
func (s *Service) Solve(ctx context.Context, req models.SolveRequest) (models.SolveResponse, error) {
	if err := ValidatePitching(req.Params); err != nil {
		return models.SolveResponse{}, err
	}
	if err := validateTarget(req.TargetX, req.TargetY); err != nil {
		return models.SolveResponse{}, err
	}

	// Incoming angles do not affect the solver.
	keyParams := req
	keyParams.Params.HAngle, keyParams.Params.VAngle = 0, 0
	key, err := s.cache.Key(models.KindSolve, keyParams)
	if err != nil {
		return models.SolveResponse{}, err
	}

	resp := models.SolveResponse{}
	found, err := s.cache.Get(ctx, key, &resp.Solution)
	if err != nil {
		log.Printf("[CACHE] solve lookup failed: %v", err)
	}
	if found {
		resp.Cached = true
	} else {
		start := time.Now()
		resp.Solution = s.engine.SolvePitchAngles(req.Params, req.TargetX, req.TargetY)
		if !resp.Solution.Converged {
			log.Printf("[SIM] solver stopped after %d iterations, residual (%.4f, %.4f) m",
				resp.Solution.Iterations, resp.Solution.ErrorX, resp.Solution.ErrorY)
		}
		log.Printf("[SIM] solve target=(%.3f, %.3f) took %s", req.TargetX, req.TargetY, time.Since(start))
		if !finiteSolution(resp.Solution) {
			return models.SolveResponse{}, ErrNonFinite
		}
		if err := s.cache.Set(ctx, key, resp.Solution); err != nil {
			log.Printf("[CACHE] solve store failed: %v", err)
		}
	}

	resp.Params = req.Params
	resp.Params.HAngle, resp.Params.VAngle = resp.Solution.HAngle, resp.Solution.VAngle
	resp.Params.TargetX, resp.Params.TargetY = req.TargetX, req.TargetY
	return resp, nil
}

// Edit reduces one edit and forward-simulates the new state.
func (s *Service) Edit(ctx context.Context, req models.EditRequest) (models.EditResponse, error) {
	if err := ValidatePitching(req.Params); err != nil {
		return models.EditResponse{}, err
	}
	ed, err := req.Edit.ToEdit()
	if err != nil {
		return models.EditResponse{}, err
	}
	next, err := editor.Reduce(s.engine, req.Params, ed)
	if err != nil {
		return models.EditResponse{}, err
	}
	run, err := s.Pitching(ctx, next)
	if err != nil {
		return models.EditResponse{}, err
	}
	return models.EditResponse{Params: next, Run: run}, nil
}

func (s *Service) run(ctx context.Context, kind string, params any, compute func() flight.TrajectoryResult) (models.RunEnvelope, error) {
	env := models.RunEnvelope{RunID: uuid.NewString(), Kind: kind, ComputedAt: s.now().UTC()}

	key, err := s.cache.Key(kind, params)
	if err != nil {
		log.Printf("[CACHE] key for %s failed: %v", kind, err)
	}
	if key != "" {
		found, err := s.cache.Get(ctx, key, &env.Result)
		if err != nil {
			log.Printf("[CACHE] %s lookup failed: %v", kind, err)
		}
		if found {
			env.Cached = true
			return env, nil
		}
	}

	start := time.Now()
	env.Result = compute()
	log.Printf("[SIM] %s run %s: %d samples, distance=%.2f m, took %s",
		kind, env.RunID, len(env.Result.Points), env.Result.Distance, time.Since(start))
	if !finiteResult(env.Result) {
		log.Printf("[SIM] %s run %s diverged", kind, env.RunID)
		return models.RunEnvelope{}, ErrNonFinite
	}

	if key != "" {
		if err := s.cache.Set(ctx, key, env.Result); err != nil {
			log.Printf("[CACHE] %s store failed: %v", kind, err)
		}
	}
	return env, nil
}
