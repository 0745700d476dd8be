package account

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"deckdrop/pkg/errors"
)

// Record is one customer account row as read from Snowflake. The store
// populates it once; everything downstream treats it as read-only.
type Record struct {
	ID          string
	Name        string
	Type        string
	Industry    string
	Revenue     decimal.Decimal
	Employees   int
	CreatedDate time.Time
}

// Store provides account lookups for report generation.
type Store interface {
	// Fetch returns the record for the given account ID, or ErrNotFound.
	Fetch(ctx context.Context, id string) (*Record, error)

	// List returns all accounts ordered by name.
	List(ctx context.Context) ([]Record, error)
}

// ErrNotFound is returned by Fetch when no row matches the requested
// account ID. An absent account is never reported as a record with
// empty fields; compare with errors.Is.
var ErrNotFound = errors.New(errors.ErrCodeAccountNotFound, "account not found")
