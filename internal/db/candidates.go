package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/staffing-engine/internal/types"
)

// ListCandidates returns the full candidate pool ordered by display name.
// Skills are stored as a jsonb document per candidate.
func (db *DB) ListCandidates(ctx context.Context) ([]types.Candidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, display_name, specialization, skills FROM candidates ORDER BY display_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []types.Candidate
	for rows.Next() {
		var (
			c      types.Candidate
			skills []byte
		)
		if err := rows.Scan(&c.ID, &c.DisplayName, &c.Specialization, &skills); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		if len(skills) > 0 {
			if err := json.Unmarshal(skills, &c.Skills); err != nil {
				return nil, fmt.Errorf("failed to parse skills for candidate %s: %w", c.ID, err)
			}
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return candidates, nil
}

// GetCandidate retrieves one candidate by id. Returns (nil, nil) when no
// candidate exists with that id.
func (db *DB) GetCandidate(ctx context.Context, id string) (*types.Candidate, error) {
	var (
		c      types.Candidate
		skills []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, display_name, specialization, skills FROM candidates WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.DisplayName, &c.Specialization, &skills)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate %s: %w", id, err)
	}
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &c.Skills); err != nil {
			return nil, fmt.Errorf("failed to parse skills for candidate %s: %w", id, err)
		}
	}
	return &c, nil
}
