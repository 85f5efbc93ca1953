package scenario

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Simplici0/landedcost/internal/pricing"
)

// Timestamps are stored as fixed-width UTC text so they sort lexically.
const timeLayout = "2006-01-02 15:04:05.000000"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(timeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}

type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repository", "scenario").Logger(),
	}
}

func (r *Repository) Save(ctx context.Context, s Scenario) error {
	inputJSON, err := json.Marshal(s.Input)
	if err != nil {
		return fmt.Errorf("marshal scenario input: %w", err)
	}
	breakdownJSON, err := json.Marshal(s.Breakdown)
	if err != nil {
		return fmt.Errorf("marshal scenario breakdown: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO scenarios (id, name, created_at, landed_cost_lb, input_json, breakdown_json)
		VALUES (?, ?, ?, ?, ?, ?)
	`, s.ID, s.Name, formatTime(s.CreatedAt), s.Breakdown.TotalLandedCostLb, string(inputJSON), string(breakdownJSON)); err != nil {
		return fmt.Errorf("insert scenario: %w", err)
	}

	r.log.Debug().Str("scenario_id", s.ID).Str("name", s.Name).Msg("scenario saved")
	return nil
}

func (r *Repository) Get(ctx context.Context, id string) (Scenario, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, input_json, breakdown_json
		FROM scenarios
		WHERE id = ?
	`, id)

	s, err := scanScenario(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Scenario{}, ErrNotFound
	}
	if err != nil {
		return Scenario{}, fmt.Errorf("get scenario %q: %w", id, err)
	}
	return s, nil
}

// List returns scenarios newest first. A non-empty query keeps only names
// containing it, case-insensitively.
func (r *Repository) List(ctx context.Context, query string) ([]Scenario, error) {
	sqlText := `
		SELECT id, name, created_at, input_json, breakdown_json
		FROM scenarios`
	args := []any{}
	if q := strings.TrimSpace(query); q != "" {
		sqlText += ` WHERE name LIKE ? ESCAPE '\'`
		args = append(args, "%"+escapeLike(q)+"%")
	}
	sqlText += ` ORDER BY created_at DESC, rowid DESC`

	rows, err := r.db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("query scenarios: %w", err)
	}
	defer rows.Close()

	scenarios := make([]Scenario, 0)
	for rows.Next() {
		s, err := scanScenario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan scenario: %w", err)
		}
		scenarios = append(scenarios, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scenarios: %w", err)
	}
	return scenarios, nil
}

func (r *Repository) Rename(ctx context.Context, id, name string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE scenarios SET name = ? WHERE id = ?`, strings.TrimSpace(name), id)
	if err != nil {
		return fmt.Errorf("rename scenario %q: %w", id, err)
	}
	return requireAffected(res)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM scenarios WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete scenario %q: %w", id, err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScenario(row rowScanner) (Scenario, error) {
	var (
		s             Scenario
		createdAt     string
		inputJSON     string
		breakdownJSON string
	)
	if err := row.Scan(&s.ID, &s.Name, &createdAt, &inputJSON, &breakdownJSON); err != nil {
		return Scenario{}, err
	}

	var err error
	if s.CreatedAt, err = parseTime(createdAt); err != nil {
		return Scenario{}, err
	}
	if err := json.Unmarshal([]byte(inputJSON), &s.Input); err != nil {
		return Scenario{}, fmt.Errorf("unmarshal scenario input: %w", err)
	}
	if err := json.Unmarshal([]byte(breakdownJSON), &s.Breakdown); err != nil {
		return Scenario{}, fmt.Errorf("unmarshal scenario breakdown: %w", err)
	}
	if s.Breakdown.LineItems == nil {
		s.Breakdown.LineItems = []pricing.CostLineItem{}
	}
	return s, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
