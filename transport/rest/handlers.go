package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/zoo-mahjong/internal/entity"
	"github.com/rocketscienceinc/zoo-mahjong/internal/repository"
	"github.com/rocketscienceinc/zoo-mahjong/internal/usecase"
)

const maxResultsLimit = 100

type Handlers interface {
	GetGame(w http.ResponseWriter, r *http.Request)
	ListResults(w http.ResponseWriter, r *http.Request)
}

type gameService interface {
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	ListResults(ctx context.Context, limit int) ([]*entity.Result, error)
}

type handlers struct {
	logger      *slog.Logger
	gameService gameService
}

func NewHandlers(logger *slog.Logger, gameService gameService) Handlers {
	return &handlers{
		logger:      logger.With("component", "rest"),
		gameService: gameService,
	}
}

// GetGame returns a game snapshot. Secrets stay hidden until the game is over.
func (that *handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	game, err := that.gameService.GetGame(r.Context(), id)
	if errors.Is(err, repository.ErrGameNotFound) {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	if err != nil {
		that.logger.Error("failed to get game", "gameID", id, "error", err)
		http.Error(w, "Failed to get game", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, game.Masked())
}

// ListResults returns recorded results, newest first.
func (that *handlers) ListResults(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 || value > maxResultsLimit {
			http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = value
	}

	results, err := that.gameService.ListResults(r.Context(), limit)
	if errors.Is(err, usecase.ErrResultsDisabled) {
		http.Error(w, "Results are not recorded", http.StatusNotFound)
		return
	}

	if err != nil {
		that.logger.Error("failed to list results", "error", err)
		http.Error(w, "Failed to list results", http.StatusInternalServerError)
		return
	}

	if results == nil {
		results = []*entity.Result{}
	}

	that.writeJSON(w, results)
}

func (that *handlers) writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
