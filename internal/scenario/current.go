package scenario

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Simplici0/landedcost/internal/pricing"
)

// CurrentInput returns the saved working input. The bool is false when none
// has been saved yet.
func (r *Repository) CurrentInput(ctx context.Context) (pricing.PricingInput, bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT input_json FROM current_input WHERE id = 1`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return pricing.PricingInput{}, false, nil
	}
	if err != nil {
		return pricing.PricingInput{}, false, fmt.Errorf("query current input: %w", err)
	}

	var in pricing.PricingInput
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return pricing.PricingInput{}, false, fmt.Errorf("unmarshal current input: %w", err)
	}
	return in, true, nil
}

func (r *Repository) SaveCurrentInput(ctx context.Context, in pricing.PricingInput) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal current input: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO current_input (id, input_json, updated_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET input_json = excluded.input_json, updated_at = excluded.updated_at
	`, string(raw), formatTime(time.Now())); err != nil {
		return fmt.Errorf("save current input: %w", err)
	}
	return nil
}
