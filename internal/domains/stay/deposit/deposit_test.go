package deposit_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"lodge/internal/domains/stay/deposit"
)

func TestRefund(t *testing.T) {
	full := decimal.NewFromInt(500)

	tests := []struct {
		name   string
		action string
		want   int64
	}{
		{name: "full refund", action: deposit.ActionFull, want: 500},
		{name: "partial refund", action: deposit.ActionPartial, want: 250},
		{name: "forfeited", action: deposit.ActionForfeit, want: 0},
		{name: "unspecified defaults to full", action: "", want: 500},
		{name: "unrecognized defaults to full", action: "Half", want: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deposit.Refund(tt.action, full)

			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}
}
