// Package ledger provides the append-only stock movement log.
// Every quantity change in the system is one IN or OUT row here;
// balances are derived, never stored.
package ledger

import (
	"time"
)

// Direction tags a movement as inbound or outbound.
type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == DirectionIn || d == DirectionOut
}

// Movement is one ledger row. Rows are inserted by manual stock calls
// and bulk imports, and removed only by the admin reset.
type Movement struct {
	ID         int64     `db:"id" json:"id"`
	MaterialID int64     `db:"material_id" json:"material_id"`
	Type       Direction `db:"type" json:"type"`
	Quantity   int64     `db:"quantity" json:"quantity"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
