package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rocketscienceinc/zoo-mahjong/internal/entity"
)

const defaultResultsLimit = 20

type ResultRepository interface {
	Record(ctx context.Context, result *entity.Result) error
	List(ctx context.Context, limit int) ([]*entity.Result, error)
}

type dbResult struct {
	conn *sql.DB
}

func NewResultRepository(conn *sql.DB) ResultRepository {
	return &dbResult{
		conn: conn,
	}
}

func (that *dbResult) Record(ctx context.Context, result *entity.Result) error {
	query := `INSERT INTO results (game_id, winner, rounds, chips_one, chips_two, finished_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (game_id) DO UPDATE SET
			winner = excluded.winner,
			rounds = excluded.rounds,
			chips_one = excluded.chips_one,
			chips_two = excluded.chips_two,
			finished_at = excluded.finished_at`

	_, err := that.conn.ExecContext(ctx, query,
		result.GameID, result.Winner, result.Rounds, result.Chips[0], result.Chips[1], result.FinishedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

// List returns the newest results first.
func (that *dbResult) List(ctx context.Context, limit int) ([]*entity.Result, error) {
	if limit <= 0 {
		limit = defaultResultsLimit
	}

	query := `SELECT game_id, winner, rounds, chips_one, chips_two, finished_at
		FROM results ORDER BY finished_at DESC, game_id LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	results := make([]*entity.Result, 0, limit)
	for rows.Next() {
		var (
			result     entity.Result
			finishedAt int64
		)

		if err = rows.Scan(&result.GameID, &result.Winner, &result.Rounds,
			&result.Chips[0], &result.Chips[1], &finishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}

		result.FinishedAt = time.UnixMilli(finishedAt).UTC()
		results = append(results, &result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read results: %w", err)
	}

	return results, nil
}
