package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearRecordIsDepleted(t *testing.T) {
	assert.True(t, (&YearRecord{NetWorth: decimal.Zero}).IsDepleted())
	assert.True(t, (&YearRecord{NetWorth: decimal.NewFromInt(-1)}).IsDepleted())
	assert.False(t, (&YearRecord{NetWorth: decimal.RequireFromString("0.01")}).IsDepleted())
}

func TestFinalRecord(t *testing.T) {
	var r ProjectionResult
	assert.Nil(t, r.FinalRecord())

	r.Projection = []YearRecord{{Year: 0}, {Year: 1}, {Year: 2}}
	require.NotNil(t, r.FinalRecord())
	assert.Equal(t, 2, r.FinalRecord().Year)
}
