package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLeadDefaults(t *testing.T) {
	l := NewLead("owner-1", "  Maria  ")
	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "Maria", l.Name)
	assert.Equal(t, 50, l.Score)
	assert.Equal(t, StageFormFilled, l.Status)
	assert.Equal(t, CategoryNurturing, l.Category())
	assert.NoError(t, l.Validate())
}

func TestLeadValidate(t *testing.T) {
	l := NewLead("owner-1", "")
	l.Score = 120
	l.NoShow = true

	err := l.Validate()
	fe, ok := IsFieldErrors(err)
	require.True(t, ok)
	fields := map[string]bool{}
	for _, e := range fe {
		fields[e.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["score"])
	assert.True(t, fields["no_show"])
}

func TestLeadNoShowWithMeeting(t *testing.T) {
	l := NewLead("owner-1", "João")
	at := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)
	l.MeetingAt = &at
	l.NoShow = true
	assert.NoError(t, l.Validate())
	assert.True(t, l.HasMeeting())
}
