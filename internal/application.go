package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/zoo-mahjong/internal/config"
	"github.com/rocketscienceinc/zoo-mahjong/internal/engine"
	"github.com/rocketscienceinc/zoo-mahjong/internal/repository"
	"github.com/rocketscienceinc/zoo-mahjong/internal/repository/storage"
	"github.com/rocketscienceinc/zoo-mahjong/internal/service"
	"github.com/rocketscienceinc/zoo-mahjong/internal/usecase"
	"github.com/rocketscienceinc/zoo-mahjong/transport/console"
	"github.com/rocketscienceinc/zoo-mahjong/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// Options are the command line choices of one run.
type Options struct {
	AI       bool
	ResumeID string
	In       io.Reader
	Out      io.Writer
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config, opts Options) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	gameRepo, closeGames, err := newGameRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeGames()

	var resultRepo repository.ResultRepository
	if conf.SQLiteStoragePath != "" {
		sqliteStorage, sqliteErr := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
		if sqliteErr != nil {
			return fmt.Errorf("could not open sqlite storage: %w", sqliteErr)
		}

		defer func() {
			if err = sqliteStorage.Close(); err != nil {
				log.Error("could not close sqlite storage", "error", err)
			}
		}()

		if err = sqliteStorage.Init(ctx); err != nil {
			return fmt.Errorf("could not init sqlite storage: %w", err)
		}

		resultRepo = repository.NewResultRepository(sqliteStorage.Connection)
	}

	rng := engine.NewRandomizer()
	rules := engine.New(logger, rng, conf.Game)
	gameManager := usecase.NewGameManager(logger, rules, gameRepo, resultRepo, conf.FinishedGameTTL)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	if conf.HTTPPort != "" {
		go func() {
			log.Info("Starting HTTP server", "port", conf.HTTPPort)
			router := rest.NewRouter(rest.NewPingHandler(), rest.NewHandlers(logger, gameManager))
			if httpErr := rest.Start(ctx, conf.HTTPPort, router); httpErr != nil {
				log.Error("HTTP server error", "error", httpErr)
				httpErrCh <- httpErr
			}
		}()
	}

	// run console session
	bot := service.NewBotService(rng)
	session := console.NewSession(console.New(opts.In, opts.Out), gameManager, bot, opts.AI)

	sessionErrCh := make(chan error, 1)
	go func() {
		sessionErrCh <- session.Run(ctx, opts.ResumeID)
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-sessionErrCh:
		if err != nil && !errors.Is(err, console.ErrInputClosed) {
			return fmt.Errorf("console session error: %w", err)
		}
		log.Info("Console session ended")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newGameRepository(
	ctx context.Context, log *slog.Logger, conf *config.Config,
) (repository.GameRepository, func(), error) {
	if conf.Storage != config.StorageRedis {
		return repository.NewMemoryGameRepository(), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewGameRepository(redisStorage.Connection), closeFn, nil
}
