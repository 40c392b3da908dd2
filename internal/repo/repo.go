// Package repo is the Postgres persistence layer: user accounts and
// saved analysis runs.
package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// AnalysisRecord is one saved analysis run. Loads keeps the submitted
// load list verbatim as JSON so a run can be re-executed later.
type AnalysisRecord struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	SpanM     float64         `json:"span_m"`
	Ra        float64         `json:"ra"`
	Rb        float64         `json:"rb"`
	MaxShear  float64         `json:"max_shear"`
	MaxMoment float64         `json:"max_moment"`
	Loads     json.RawMessage `json:"loads"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)

	SaveAnalysis(ctx context.Context, userID int, rec AnalysisRecord) (int, error)
	ListAnalyses(ctx context.Context, userID int) ([]AnalysisRecord, error)
	GetAnalysis(ctx context.Context, userID, id int) (AnalysisRecord, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"
	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveAnalysis(ctx context.Context, userID int, rec AnalysisRecord) (int, error) {
	var id int
	query := `INSERT INTO analyses (user_id, name, span_m, ra, rb, max_shear, max_moment, loads)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		userID, rec.Name, rec.SpanM, rec.Ra, rec.Rb, rec.MaxShear, rec.MaxMoment, []byte(rec.Loads),
	).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListAnalyses(ctx context.Context, userID int) ([]AnalysisRecord, error) {
	query := `SELECT id, name, span_m, ra, rb, max_shear, max_moment, loads, created_at
		FROM analyses WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var rec AnalysisRecord
		var loads []byte
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.SpanM, &rec.Ra, &rec.Rb,
			&rec.MaxShear, &rec.MaxMoment, &loads, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Loads = json.RawMessage(loads)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PostgresRepository) GetAnalysis(ctx context.Context, userID, id int) (AnalysisRecord, error) {
	query := `SELECT id, name, span_m, ra, rb, max_shear, max_moment, loads, created_at
		FROM analyses WHERE user_id=$1 AND id=$2`

	var rec AnalysisRecord
	var loads []byte
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(&rec.ID, &rec.Name, &rec.SpanM,
		&rec.Ra, &rec.Rb, &rec.MaxShear, &rec.MaxMoment, &loads, &rec.CreatedAt)
	if err != nil {
		return AnalysisRecord{}, err
	}
	rec.Loads = json.RawMessage(loads)
	return rec, nil
}
