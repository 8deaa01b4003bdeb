package model

import (
	"context"
	"doublelife-server/pkg/db"
	"time"
)

const gameResultColumns = `
game_results.id,
game_results.player_id,
game_results.difficulty,
game_results.outcome,
game_results.days_survived,
game_results.total_paid,
game_results.won,
game_results.created`

// GameResult is a record in the `game_results` table, one row per
// finished run
type GameResult struct {
	ID           int64     `json:"id"`
	PlayerID     int64     `json:"playerId"`
	Difficulty   string    `json:"difficulty"`
	Outcome      string    `json:"outcome"`
	DaysSurvived int       `json:"daysSurvived"`
	TotalPaid    int       `json:"totalPaid"`
	Won          bool      `json:"won"`
	Created      time.Time `json:"created"`
}

func getGameResultByRow(row db.Scanner) (*GameResult, error) {
	var result GameResult
	if err := row.Scan(&result.ID, &result.PlayerID, &result.Difficulty, &result.Outcome,
		&result.DaysSurvived, &result.TotalPaid, &result.Won, &result.Created); err != nil {
		return nil, err
	}

	return &result, nil
}

// CreateGameResult records a finished run
func CreateGameResult(ctx context.Context, playerID int64, difficulty, outcome string, daysSurvived, totalPaid int, won bool) (*GameResult, error) {
	const query = `
INSERT INTO game_results (player_id, difficulty, outcome, days_survived, total_paid, won)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + gameResultColumns

	row := db.Instance().QueryRowContext(ctx, query, playerID, difficulty, outcome, daysSurvived, totalPaid, won)
	return getGameResultByRow(row)
}

// GetGameResults returns a player's finished runs, newest first
func GetGameResults(ctx context.Context, playerID int64, offset int64, limit int) ([]*GameResult, error) {
	const query = `
SELECT ` + gameResultColumns + `
FROM game_results
WHERE player_id = $1
ORDER BY id DESC
OFFSET $2
LIMIT $3`

	rows, err := db.Instance().QueryContext(ctx, query, playerID, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]*GameResult, 0)
	for rows.Next() {
		result, err := getGameResultByRow(rows)
		if err != nil {
			return nil, err
		}

		results = append(results, result)
	}

	return results, nil
}
