package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/zoo-mahjong/internal/entity"
	"github.com/rocketscienceinc/zoo-mahjong/internal/repository"
	"github.com/rocketscienceinc/zoo-mahjong/internal/usecase"
)

type mockGameService struct {
	mock.Mock
}

func (that *mockGameService) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGameService) ListResults(ctx context.Context, limit int) ([]*entity.Result, error) {
	args := that.Called(ctx, limit)
	results, _ := args.Get(0).([]*entity.Result)
	return results, args.Error(1)
}

func newTestRouter(service gameService) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(NewPingHandler(), NewHandlers(logger, service))
}

func newRunningGame() *entity.Game {
	game := entity.NewGame("game-1",
		entity.NewPlayer(entity.PlayerOne, "Player 1", entity.DefaultChips,
			[]entity.Animal{entity.Lion, entity.Monkey, entity.Tiger},
			entity.Condition{More: entity.Giraffe, Less: entity.Elephant}),
		entity.NewPlayer(entity.PlayerTwo, "Computer", entity.DefaultChips,
			[]entity.Animal{entity.Tiger, entity.Elephant, entity.Lion},
			entity.Condition{More: entity.Monkey, Less: entity.Lion}),
	)
	game.Start()
	return game
}

func serve(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestPingHandler(t *testing.T) {
	rec := serve(t, newTestRouter(&mockGameService{}), "/ping")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestHandlers_GetGame(t *testing.T) {
	t.Run("Running game hides secrets", func(t *testing.T) {
		// Given: a game in progress
		service := &mockGameService{}
		service.On("GetGame", mock.Anything, "game-1").Return(newRunningGame(), nil)

		// When: requesting its snapshot
		rec := serve(t, newTestRouter(service), "/games/game-1")

		// Then: players are listed without sequence or condition
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var got entity.Game
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "game-1", got.ID)
		assert.Equal(t, entity.StatusOngoing, got.Status)
		for _, player := range got.Players {
			assert.Empty(t, player.Sequence)
			assert.Equal(t, entity.Condition{}, player.Condition)
			assert.Equal(t, entity.DefaultChips, player.Chips)
		}
		service.AssertExpectations(t)
	})

	t.Run("Finished game reveals secrets", func(t *testing.T) {
		game := newRunningGame()
		game.Finish(entity.PlayerTwo)
		service := &mockGameService{}
		service.On("GetGame", mock.Anything, "game-1").Return(game, nil)

		rec := serve(t, newTestRouter(service), "/games/game-1")

		require.Equal(t, http.StatusOK, rec.Code)
		var got entity.Game
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, entity.PlayerTwo, got.Winner)
		assert.Equal(t, []entity.Animal{entity.Lion, entity.Monkey, entity.Tiger}, got.Players[0].Sequence)
		assert.Equal(t, entity.Condition{More: entity.Monkey, Less: entity.Lion}, got.Players[1].Condition)
	})

	t.Run("Unknown game is 404", func(t *testing.T) {
		service := &mockGameService{}
		service.On("GetGame", mock.Anything, "nope").Return(nil, repository.ErrGameNotFound)

		rec := serve(t, newTestRouter(service), "/games/nope")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Storage failure is 500", func(t *testing.T) {
		service := &mockGameService{}
		service.On("GetGame", mock.Anything, "game-1").Return(nil, errors.New("connection refused"))

		rec := serve(t, newTestRouter(service), "/games/game-1")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandlers_ListResults(t *testing.T) {
	t.Run("Passes the limit and returns the results", func(t *testing.T) {
		// Given: one recorded result
		finished := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		service := &mockGameService{}
		service.On("ListResults", mock.Anything, 5).Return([]*entity.Result{
			{GameID: "game-1", Winner: entity.PlayerOne, Rounds: 7, Chips: [2]int{2, 4}, FinishedAt: finished},
		}, nil)

		// When: listing with a limit
		rec := serve(t, newTestRouter(service), "/results?limit=5")

		// Then: the result is returned as JSON
		require.Equal(t, http.StatusOK, rec.Code)
		var got []*entity.Result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "game-1", got[0].GameID)
		assert.Equal(t, [2]int{2, 4}, got[0].Chips)
		assert.True(t, finished.Equal(got[0].FinishedAt))
		service.AssertExpectations(t)
	})

	t.Run("Empty ledger is an empty list", func(t *testing.T) {
		service := &mockGameService{}
		service.On("ListResults", mock.Anything, 0).Return(nil, nil)

		rec := serve(t, newTestRouter(service), "/results")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("Bad limit is 400", func(t *testing.T) {
		service := &mockGameService{}

		for _, target := range []string{"/results?limit=abc", "/results?limit=0", "/results?limit=1000"} {
			rec := serve(t, newTestRouter(service), target)
			assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		}
		service.AssertNotCalled(t, "ListResults", mock.Anything, mock.Anything)
	})

	t.Run("Disabled ledger is 404", func(t *testing.T) {
		service := &mockGameService{}
		service.On("ListResults", mock.Anything, 0).Return(nil, usecase.ErrResultsDisabled)

		rec := serve(t, newTestRouter(service), "/results")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
