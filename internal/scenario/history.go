package scenario

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Simplici0/landedcost/internal/pricing"
)

// DefaultHistoryLimit is how many calculations are kept when no limit is configured.
const DefaultHistoryLimit = 10

type HistoryEntry struct {
	ID           string               `json:"id"`
	Timestamp    time.Time            `json:"timestamp"`
	SupplierName string               `json:"supplierName"`
	CustomerName string               `json:"customerName"`
	LandedCostLb float64              `json:"landedCostLb"`
	Input        pricing.PricingInput `json:"input"`
}

func NewHistoryEntry(supplierName, customerName string, input pricing.PricingInput, breakdown pricing.CostBreakdown) HistoryEntry {
	return HistoryEntry{
		ID:           uuid.NewString(),
		Timestamp:    time.Now().UTC().Truncate(time.Microsecond),
		SupplierName: supplierName,
		CustomerName: customerName,
		LandedCostLb: breakdown.TotalLandedCostLb,
		Input:        input,
	}
}

// AddHistory records e and drops everything but the newest max entries.
// A non-positive max falls back to DefaultHistoryLimit.
func (r *Repository) AddHistory(ctx context.Context, e HistoryEntry, max int) error {
	if max <= 0 {
		max = DefaultHistoryLimit
	}

	inputJSON, err := json.Marshal(e.Input)
	if err != nil {
		return fmt.Errorf("marshal history input: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin history transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO calculation_history (id, created_at, supplier_name, customer_name, landed_cost_lb, input_json)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.ID, formatTime(e.Timestamp), e.SupplierName, e.CustomerName, e.LandedCostLb, string(inputJSON)); err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM calculation_history
		WHERE id NOT IN (
			SELECT id FROM calculation_history
			ORDER BY created_at DESC, rowid DESC
			LIMIT ?
		)
	`, max); err != nil {
		return fmt.Errorf("trim history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit history transaction: %w", err)
	}
	return nil
}

// ListHistory returns entries newest first.
func (r *Repository) ListHistory(ctx context.Context) ([]HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, created_at, supplier_name, customer_name, landed_cost_lb, input_json
		FROM calculation_history
		ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	entries := make([]HistoryEntry, 0)
	for rows.Next() {
		var (
			e         HistoryEntry
			createdAt string
			inputJSON string
		)
		if err := rows.Scan(&e.ID, &createdAt, &e.SupplierName, &e.CustomerName, &e.LandedCostLb, &inputJSON); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		if e.Timestamp, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(inputJSON), &e.Input); err != nil {
			return nil, fmt.Errorf("unmarshal history input: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return entries, nil
}

func (r *Repository) ClearHistory(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM calculation_history`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	r.log.Info().Msg("calculation history cleared")
	return nil
}
