package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/FunsaiSushi/mazewalker/api"
	gameapi "github.com/FunsaiSushi/mazewalker/api/game"
	api_i "github.com/FunsaiSushi/mazewalker/api/i"
	"github.com/FunsaiSushi/mazewalker/api/identity"
	"github.com/FunsaiSushi/mazewalker/config"
	"github.com/FunsaiSushi/mazewalker/infrastruture/keyvalue"
	"github.com/FunsaiSushi/mazewalker/infrastruture/repo"
	"github.com/FunsaiSushi/mazewalker/infrastruture/scoreboard"
	"github.com/FunsaiSushi/mazewalker/infrastruture/token"
	"github.com/FunsaiSushi/mazewalker/service"
	"github.com/FunsaiSushi/mazewalker/service/i"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *goredis.Client
	userRepo       i.UserRepo
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	scoreBoard     i.ScoreBoard
	prefService    i.Preferences
	sessionManager i.GameCoordinator
	authController api_i.Controller
	gameController api_i.Controller
	router         *api.Router
	appLogger      zerolog.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Fatal().Err(err).Msg("MongoDB ping failed")
	}
	appLogger.Info().Msg("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = goredis.NewClient(&goredis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Fatal().Err(err).Msg("Redis ping failed")
	}
	appLogger.Info().Msg("Connected to Redis")
}

func initUserRepo(client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	appLogger.Info().Msg("User repository initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info().Msg("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Creating auth service")
	}
	appLogger.Info().Msg("Auth service initialized")
}

func initScoreBoard() {
	var err error
	scoreBoard, err = scoreboard.NewRedisScoreBoard(redisClient, "mazewalker")
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Creating scoreboard")
	}
	appLogger.Info().Msg("Scoreboard initialized")
}

func initPreferenceService() {
	store, err := keyvalue.NewRedisStore(redisClient, "mazewalker")
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Creating key-value store")
	}
	prefService, err = service.NewPreferenceService(store)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Creating preference service")
	}
	appLogger.Info().Msg("Preference service initialized")
}

func initSessionManager() {
	var err error
	sessionManager, err = service.NewGameSessionManager(&service.SessionConfig{
		Users:  userRepo,
		Scores: scoreBoard,
		Logger: appLogger.With().Str("component", "sessions").Logger(),
	})
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Creating session manager")
	}
	appLogger.Info().Msg("Session manager initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	var err error
	gameController, err = gameapi.NewGameController(sessionManager, scoreBoard, prefService)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Creating game controller")
	}
	appLogger.Info().Msg("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, gameController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info().Msg("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	appLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Str("app", "mazewalker").Logger()

	gin.SetMode(config.Envs.GinMode)

	initMongo(ctx)
	defer func() {
		// The startup context has long expired by shutdown; disconnect
		// gets its own deadline.
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = mongoClient.Disconnect(shutdownCtx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initUserRepo(mongoClient)
	initJWTTokenizer()
	initAuthService()
	initScoreBoard()
	initPreferenceService()
	initSessionManager()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Fatal().Err(err).Msg("Starting server")
	}
}
