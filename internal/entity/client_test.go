package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePayments(t *testing.T) {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	payments, err := GeneratePayments(start, 150000, 12)
	require.NoError(t, err)
	require.Len(t, payments, 12)

	for i, p := range payments {
		assert.Equal(t, int64(150000), p.Amount)
		assert.False(t, p.IsPaid)
		assert.Equal(t, 15, p.DueDate.Day())
		assert.Equal(t, time.Month(1+i), p.DueDate.Month())
		if i > 0 {
			prev := payments[i-1].DueDate
			assert.True(t, p.DueDate.After(prev))
			assert.Equal(t, prev.AddDate(0, 1, 0), p.DueDate)
		}
	}
}

func TestGeneratePaymentsZeroAmountAndSingle(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	payments, err := GeneratePayments(start, 0, 1)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, start, payments[0].DueDate)
	assert.Equal(t, int64(0), payments[0].Amount)
}

func TestGeneratePaymentsRejectsZeroInstallments(t *testing.T) {
	_, err := GeneratePayments(time.Now(), 100, 0)
	assert.ErrorIs(t, err, ErrInvalidInstallments)
}

func TestGeneratePaymentsMonthEndNormalizes(t *testing.T) {
	start := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	payments, err := GeneratePayments(start, 100, 3)
	require.NoError(t, err)

	// 31/02/2024 normaliza para 02/03/2024.
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), payments[1].DueDate)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), payments[2].DueDate)
	assert.True(t, payments[1].DueDate.After(payments[0].DueDate))
	assert.True(t, payments[2].DueDate.After(payments[1].DueDate))
}

func TestNewClientRequiresName(t *testing.T) {
	_, err := NewClient("owner-1", " ", "", 1000, time.Now())
	assert.Error(t, err)

	c, err := NewClient("owner-1", "Acme", "fin@acme.com", 1000, time.Now())
	require.NoError(t, err)
	assert.True(t, c.Active)
}
