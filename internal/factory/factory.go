package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/palacegame-go/internal/dependencies/clock"
	"github.com/mcoot/palacegame-go/internal/dependencies/random"
	"github.com/mcoot/palacegame-go/internal/manager"
	"github.com/mcoot/palacegame-go/internal/model"
	"github.com/mcoot/palacegame-go/internal/rooms"
	"github.com/mcoot/palacegame-go/internal/services/bot"
	"github.com/mcoot/palacegame-go/internal/services/deck"
	"github.com/mcoot/palacegame-go/internal/services/game"
	"github.com/mcoot/palacegame-go/internal/services/rules"
	"github.com/mcoot/palacegame-go/internal/services/swap"
	"github.com/mcoot/palacegame-go/internal/storage"
	"github.com/mcoot/palacegame-go/internal/storage/memory"
	redisstorage "github.com/mcoot/palacegame-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// Rooms registry
	Rooms *rooms.InMemory

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	RulesService   *rules.Service
	DeckService    *deck.Service
	GameController *game.Controller
	SwapService    *swap.Service
	BotService     *bot.Service
	Manager        *manager.Manager
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Random overrides the random source (optional)
	// If nil, a crypto-backed source is used; pass a seeded source for
	// reproducible deals
	Random random.Random
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := cfg.Random
	if rnd == nil {
		rnd = random.New()
	}
	roomsService := rooms.NewInMemory(clk)

	return newWithDependencies(store, roomsService, clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, roomsService *rooms.InMemory, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	// Create services
	rulesService := rules.New()
	deckService := deck.New(rnd)
	gameController := game.NewController(rulesService)
	swapService := swap.New()
	strategies := map[model.BotStrategy]bot.Strategy{
		model.BotStrategyRandom: bot.NewRandomStrategy(rulesService, rnd),
	}
	botService := bot.NewService(gameController, strategies, logger)
	gameManager := manager.New(store, roomsService, deckService, gameController, swapService, botService, clk, logger)

	return &App{
		Storage:        store,
		Rooms:          roomsService,
		Clock:          clk,
		Random:         rnd,
		RulesService:   rulesService,
		DeckService:    deckService,
		GameController: gameController,
		SwapService:    swapService,
		BotService:     botService,
		Manager:        gameManager,
	}
}
