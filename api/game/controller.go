package gameapi

import (
	"errors"
	"net/http"

	"github.com/FunsaiSushi/mazewalker/api/identity"
	"github.com/FunsaiSushi/mazewalker/game/engine"
	"github.com/FunsaiSushi/mazewalker/game/maze"
	"github.com/FunsaiSushi/mazewalker/service"
	"github.com/FunsaiSushi/mazewalker/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const leaderboardSize = 10

// GameController handles the traversal game routes for authenticated
// players.
type GameController struct {
	sessions i.GameCoordinator
	scores   i.ScoreBoard
	prefs    i.Preferences
}

// NewGameController creates a GameController from its collaborators.
func NewGameController(sessions i.GameCoordinator, scores i.ScoreBoard, prefs i.Preferences) (*GameController, error) {
	if sessions == nil || scores == nil || prefs == nil {
		return nil, errors.New("game controller requires sessions, scores, and preferences")
	}
	return &GameController{
		sessions: sessions,
		scores:   scores,
		prefs:    prefs,
	}, nil
}

// RegisterPublic registers public routes.
func (c *GameController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/game/leaderboard", c.leaderboard)
}

// RegisterProtected registers routes requiring authentication.
func (c *GameController) RegisterProtected(route *gin.RouterGroup) {
	game := route.Group("/game")
	{
		game.POST("/start", c.start)
		game.POST("/move", c.move)
		game.POST("/restart", c.restart)
		game.GET("/state", c.state)
		game.GET("/best-time", c.bestTime)
		game.GET("/theme", c.theme)
		game.PUT("/theme", c.setTheme)
	}
}

// playerID resolves the authenticated player or aborts with 401.
func (c *GameController) playerID(ctx *gin.Context) (uuid.UUID, bool) {
	id, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
	}
	return id, ok
}

// respondState renders a snapshot with its minimap.
func (c *GameController) respondState(ctx *gin.Context, playerID uuid.UUID, snap engine.Snapshot) (StateResponse, bool) {
	minimap, err := c.sessions.Minimap(ctx, playerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return StateResponse{}, false
	}
	return toState(snap, minimap), true
}

// start begins (or resumes) the player's game.
func (c *GameController) start(ctx *gin.Context) {
	playerID, ok := c.playerID(ctx)
	if !ok {
		return
	}

	snap, err := c.sessions.StartGame(ctx, playerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if state, ok := c.respondState(ctx, playerID, snap); ok {
		ctx.JSON(http.StatusOK, state)
	}
}

// move applies one directional move intent.
func (c *GameController) move(ctx *gin.Context) {
	playerID, ok := c.playerID(ctx)
	if !ok {
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dir, ok := maze.ParseDirection(request.Direction)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown direction"})
		return
	}

	res, snap, err := c.sessions.Move(ctx, playerID, dir)
	if errors.Is(err, service.ErrNoActiveGame) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	state, ok := c.respondState(ctx, playerID, snap)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, MoveResponse{
		Moved:        res.Moved,
		Won:          res.Won,
		Transitioned: res.Transitioned,
		State:        state,
	})
}

// restart rebuilds the player's world.
func (c *GameController) restart(ctx *gin.Context) {
	playerID, ok := c.playerID(ctx)
	if !ok {
		return
	}

	snap, err := c.sessions.Restart(ctx, playerID)
	if errors.Is(err, service.ErrNoActiveGame) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if state, ok := c.respondState(ctx, playerID, snap); ok {
		ctx.JSON(http.StatusOK, state)
	}
}

// state returns the current snapshot of the player's game.
func (c *GameController) state(ctx *gin.Context) {
	playerID, ok := c.playerID(ctx)
	if !ok {
		return
	}

	snap, err := c.sessions.State(ctx, playerID)
	if errors.Is(err, service.ErrNoActiveGame) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if state, ok := c.respondState(ctx, playerID, snap); ok {
		ctx.JSON(http.StatusOK, state)
	}
}

// bestTime returns the player's fastest completion.
func (c *GameController) bestTime(ctx *gin.Context) {
	playerID, ok := c.playerID(ctx)
	if !ok {
		return
	}

	seconds, set, err := c.scores.Best(ctx, playerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, BestTimeResponse{Seconds: seconds, Set: set})
}

// leaderboard returns the fastest completions across all players.
func (c *GameController) leaderboard(ctx *gin.Context) {
	scores, err := c.scores.Top(ctx, leaderboardSize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rows := make([]LeaderboardRow, 0, len(scores))
	for _, s := range scores {
		rows = append(rows, LeaderboardRow{Username: s.Username, Seconds: s.Seconds})
	}
	ctx.JSON(http.StatusOK, gin.H{"leaderboard": rows})
}

// theme returns the player's stored theme preference.
func (c *GameController) theme(ctx *gin.Context) {
	playerID, ok := c.playerID(ctx)
	if !ok {
		return
	}

	theme, set, err := c.prefs.Theme(ctx, playerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, ThemeResponse{Theme: theme, Set: set})
}

// setTheme stores the player's theme preference.
func (c *GameController) setTheme(ctx *gin.Context) {
	playerID, ok := c.playerID(ctx)
	if !ok {
		return
	}

	var request ThemeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.prefs.SetTheme(ctx, playerID, request.Theme); err != nil {
		if errors.Is(err, service.ErrUnknownTheme) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Theme updated"})
}
