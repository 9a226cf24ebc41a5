package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	assert.Equal(t, 50.0, Progress(5, 10))
	assert.Equal(t, 100.0, Progress(15, 10))
	assert.Equal(t, 0.0, Progress(5, 0))
	assert.Equal(t, 0.0, Progress(5, -3))
	assert.Equal(t, 0.0, Progress(0, 10))
}

func TestNewGoalValidation(t *testing.T) {
	g, err := NewGoal("owner-1", "Faturamento", "BRL", 2500, 10000, 3, 2024)
	assert.NoError(t, err)
	assert.Equal(t, 25.0, g.Progress())

	_, err = NewGoal("owner-1", "", "BRL", 0, 10, 13, 2024)
	fe, ok := IsFieldErrors(err)
	assert.True(t, ok)
	assert.Len(t, fe, 2)
}
