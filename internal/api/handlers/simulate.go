package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playmatatu/ballflight/internal/flight"
	"github.com/playmatatu/ballflight/internal/models"
	"github.com/playmatatu/ballflight/internal/sim"
)

// GetConstants reports the physics and fence the server simulates with.
func GetConstants(svc *sim.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		e := svc.Engine()
		c.JSON(http.StatusOK, models.ConstantsResponse{
			Constants: e.Constants(),
			Fence:     e.Fence(),
		})
	}
}

// SimulateBatting runs one batted ball.
func SimulateBatting(svc *sim.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p flight.BattingParameters
		if !bindJSON(c, &p) {
			return
		}
		env, err := svc.Batting(c.Request.Context(), p)
		if err != nil {
			respondError(c, models.KindBatting, err)
			return
		}
		c.JSON(http.StatusOK, env)
	}
}

// SimulatePitching runs one pitch.
func SimulatePitching(svc *sim.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p flight.PitchingParameters
		if !bindJSON(c, &p) {
			return
		}
		env, err := svc.Pitching(c.Request.Context(), p)
		if err != nil {
			respondError(c, models.KindPitching, err)
			return
		}
		c.JSON(http.StatusOK, env)
	}
}

// SolvePitch finds release angles for a plate target.
func SolvePitch(svc *sim.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SolveRequest
		if !bindJSON(c, &req) {
			return
		}
		resp, err := svc.Solve(c.Request.Context(), req)
		if err != nil {
			respondError(c, models.KindSolve, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// EditPitch applies one parameter edit and returns the consistent state.
func EditPitch(svc *sim.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.EditRequest
		if !bindJSON(c, &req) {
			return
		}
		resp, err := svc.Edit(c.Request.Context(), req)
		if err != nil {
			respondError(c, models.KindEdit, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
