package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/tournament-engine/models"
	"github.com/lib/pq"
)

const tournamentsSchema = `
	CREATE TABLE IF NOT EXISTS tournaments (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		data       JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT tournaments_name_key UNIQUE (name)
	)`

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

// EnsureSchema creates the snapshot table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, tournamentsSchema); err != nil {
		return fmt.Errorf("failed to create tournaments table: %w", err)
	}
	return nil
}

func (r *postgresTournamentRepository) Create(ctx context.Context, tournament *models.Tournament) error {
	data, err := json.Marshal(tournament)
	if err != nil {
		return fmt.Errorf("failed to encode tournament %s: %w", tournament.ID, err)
	}
	query := `
		INSERT INTO tournaments (id, name, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err = r.db.ExecContext(ctx, query, tournament.ID, tournament.Name, data, tournament.CreatedAt, tournament.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == "tournaments_name_key" {
			return ErrTournamentNameConflict
		}
		return err
	}
	return nil
}

func (r *postgresTournamentRepository) scanTournament(row interface{ Scan(...interface{}) error }) (*models.Tournament, error) {
	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	var t models.Tournament
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to decode tournament snapshot: %w", err)
	}
	return &t, nil
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	row := r.db.QueryRowContext(ctx, `SELECT data FROM tournaments WHERE id = $1`, id)
	return r.scanTournament(row)
}

func (r *postgresTournamentRepository) List(ctx context.Context) ([]*models.Tournament, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT data FROM tournaments ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := make([]*models.Tournament, 0)
	for rows.Next() {
		t, errScan := r.scanTournament(rows)
		if errScan != nil {
			return nil, errScan
		}
		tournaments = append(tournaments, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (r *postgresTournamentRepository) Update(ctx context.Context, tournament *models.Tournament) error {
	data, err := json.Marshal(tournament)
	if err != nil {
		return fmt.Errorf("failed to encode tournament %s: %w", tournament.ID, err)
	}
	updatedAt := tournament.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	result, err := r.db.ExecContext(ctx,
		`UPDATE tournaments SET name = $1, data = $2, updated_at = $3 WHERE id = $4`,
		tournament.Name, data, updatedAt, tournament.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tournaments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}
