package postgres

import (
	"math/big"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
)

func TestRemainingAfter(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		offset   int64
		returned int
		want     int64
	}{
		{name: "first page", total: 3, offset: 0, returned: 2, want: 1},
		{name: "last page", total: 3, offset: 2, returned: 1, want: 0},
		{name: "exact fit", total: 4, offset: 0, returned: 4, want: 0},
		{name: "offset past end", total: 3, offset: 10, returned: 0, want: 0},
		{name: "concurrent shrink clamps to zero", total: 1, offset: 2, returned: 2, want: 0},
		// A negative offset never survives Postgres, but the arithmetic must
		// still clamp the consumed count at zero rather than inflate it.
		{name: "negative offset clamps consumed count", total: 5, offset: -3, returned: 2, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := remainingAfter(tt.total, tt.offset, tt.returned)
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestNumericToDecimal(t *testing.T) {
	tests := []struct {
		name string
		n    pgtype.Numeric
		want string
	}{
		{
			name: "whole number",
			n:    pgtype.Numeric{Int: big.NewInt(250), Valid: true},
			want: "250",
		},
		{
			name: "fractional",
			n:    pgtype.Numeric{Int: big.NewInt(12345), Exp: -2, Valid: true},
			want: "123.45",
		},
		{
			name: "null is zero",
			n:    pgtype.Numeric{},
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := numericToDecimal(tt.n)
			if got.String() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got.String())
			}
		})
	}
}
