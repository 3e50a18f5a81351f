package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/FunsaiSushi/mazewalker/game/engine"
	"github.com/FunsaiSushi/mazewalker/game/maze"
	"github.com/FunsaiSushi/mazewalker/service/i"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Session-related errors.
var (
	ErrNoActiveGame = errors.New("no active game for player")
)

const tickInterval = time.Second

// GameSessionManager keeps one running game per player. All engine access
// is serialized per session; the manager lock only guards the session map.
type GameSessionManager struct {
	sessions      map[uuid.UUID]*gameSession
	users         i.UserRepo
	scores        i.ScoreBoard
	engineFactory func() i.GameEngine
	logger        zerolog.Logger
	sync.RWMutex
}

// gameSession wraps one engine with its serializing lock and the state of
// its clock goroutine.
type gameSession struct {
	eng     i.GameEngine
	ticking bool
	sync.Mutex
}

// SessionConfig configures a GameSessionManager.
type SessionConfig struct {
	Users  i.UserRepo
	Scores i.ScoreBoard
	Logger zerolog.Logger

	// EngineFactory builds the engine for a new session. Defaults to the
	// real traversal engine seeded from the wall clock.
	EngineFactory func() i.GameEngine
}

// NewGameSessionManager creates a session manager from the configuration.
func NewGameSessionManager(c *SessionConfig) (*GameSessionManager, error) {
	if c == nil || c.Users == nil || c.Scores == nil {
		return nil, errors.New("session manager requires a user repo and a scoreboard")
	}

	factory := c.EngineFactory
	if factory == nil {
		factory = func() i.GameEngine {
			return engine.New(rand.New(rand.NewSource(time.Now().UnixNano())))
		}
	}

	return &GameSessionManager{
		sessions:      make(map[uuid.UUID]*gameSession),
		users:         c.Users,
		scores:        c.Scores,
		engineFactory: factory,
		logger:        c.Logger,
	}, nil
}

// StartGame creates the player's session on first use and starts the game
// clock. Starting an already running game is a no-op.
func (g *GameSessionManager) StartGame(ctx context.Context, playerID uuid.UUID) (engine.Snapshot, error) {
	g.Lock()
	s, ok := g.sessions[playerID]
	if !ok {
		s = &gameSession{eng: g.engineFactory()}
		g.sessions[playerID] = s
		g.logger.Info().Str("player", playerID.String()).Msg("new game session")
	}
	g.Unlock()

	s.Lock()
	defer s.Unlock()
	if s.eng.Status() == engine.StatusNotStarted {
		s.eng.Start()
		g.startClock(s)
	}
	return s.eng.Snapshot(), nil
}

// startClock launches the per-session ticker goroutine unless one is
// already running. Caller must hold the session lock.
func (g *GameSessionManager) startClock(s *gameSession) {
	if s.ticking {
		return
	}
	s.ticking = true

	go func() {
		ticker := time.NewTicker(tickInterval)
		defer ticker.Stop()
		for range ticker.C {
			s.Lock()
			if s.eng.Status() != engine.StatusRunning {
				s.ticking = false
				s.Unlock()
				return
			}
			s.eng.Tick()
			s.Unlock()
		}
	}()
}

// Move applies a move intent to the player's game. A winning move records
// the completion time before returning.
func (g *GameSessionManager) Move(ctx context.Context, playerID uuid.UUID, dir maze.Direction) (engine.MoveResult, engine.Snapshot, error) {
	s, err := g.session(playerID)
	if err != nil {
		return engine.MoveResult{}, engine.Snapshot{}, err
	}

	s.Lock()
	defer s.Unlock()
	res := s.eng.ApplyMove(dir)
	snap := s.eng.Snapshot()

	if res.Won {
		g.recordWin(ctx, playerID, snap.Elapsed)
	}
	return res, snap, nil
}

// Restart rebuilds the player's world, resets the clock, and leaves the
// game ready to start again.
func (g *GameSessionManager) Restart(ctx context.Context, playerID uuid.UUID) (engine.Snapshot, error) {
	s, err := g.session(playerID)
	if err != nil {
		return engine.Snapshot{}, err
	}

	s.Lock()
	defer s.Unlock()
	s.eng.Restart()
	return s.eng.Snapshot(), nil
}

// State returns a read-only snapshot of the player's game.
func (g *GameSessionManager) State(ctx context.Context, playerID uuid.UUID) (engine.Snapshot, error) {
	s, err := g.session(playerID)
	if err != nil {
		return engine.Snapshot{}, err
	}

	s.Lock()
	defer s.Unlock()
	return s.eng.Snapshot(), nil
}

// Minimap returns the world overview for the player's game.
func (g *GameSessionManager) Minimap(ctx context.Context, playerID uuid.UUID) ([][]maze.Cell, error) {
	s, err := g.session(playerID)
	if err != nil {
		return nil, err
	}

	s.Lock()
	defer s.Unlock()
	return s.eng.Minimap(), nil
}

func (g *GameSessionManager) session(playerID uuid.UUID) (*gameSession, error) {
	g.RLock()
	defer g.RUnlock()
	s, ok := g.sessions[playerID]
	if !ok {
		return nil, ErrNoActiveGame
	}
	return s, nil
}

// recordWin persists the completion time. Failures are logged, not
// surfaced: a finished game is valid even if the scoreboard is down.
func (g *GameSessionManager) recordWin(ctx context.Context, playerID uuid.UUID, seconds int) {
	username := playerID.String()
	if user, err := g.users.ByID(playerID); err == nil {
		username = user.Username
	} else {
		g.logger.Warn().Err(err).Str("player", playerID.String()).Msg("resolving username for win record")
	}

	improved, err := g.scores.RecordBest(ctx, playerID, username, seconds)
	if err != nil {
		g.logger.Error().Err(err).Str("player", playerID.String()).Msg("recording completion time")
		return
	}
	g.logger.Info().
		Str("player", playerID.String()).
		Int("seconds", seconds).
		Bool("best", improved).
		Msg("game won")
}
