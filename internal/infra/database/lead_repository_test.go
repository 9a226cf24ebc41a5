package database

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

var leadColumnNames = []string{
	"id", "owner_id", "name", "phone", "instagram", "email", "niche", "revenue_band", "pain_point",
	"score", "status", "channel_id", "meeting_at", "no_show", "custom_fields", "created_at", "updated_at",
}

func TestLeadRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	lead := entity.NewLead("owner-1", "Ana")
	lead.Phone = "11 99999"

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO leads")).
		WithArgs(lead.ID, "owner-1", "Ana", "11 99999", "", "", "", "", "",
			50, "form_filled", nil, nil, false, entity.CustomFields{}, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewLeadRepository(db).Create(context.Background(), lead)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadRepositoryCreateConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO leads")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "leads_pkey"})

	err = NewLeadRepository(db).Create(context.Background(), entity.NewLead("owner-1", "Ana"))

	assert.ErrorIs(t, err, entity.ErrConflict)
}

func TestLeadRepositoryFindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	meeting := time.Date(2024, 2, 1, 15, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(leadColumnNames).AddRow(
		"lead-1", "owner-1", "Ana", "", "@ana", "ana@x.com", "odonto", "10-50k", "agenda",
		85, "meeting_scheduled", "ch-1", meeting, true, []byte(`{"budget":1500}`), created, created,
	)
	mock.ExpectQuery(regexp.QuoteMeta("FROM leads WHERE owner_id = $1 AND id = $2")).
		WithArgs("owner-1", "lead-1").
		WillReturnRows(rows)

	l, err := NewLeadRepository(db).FindByID(context.Background(), "owner-1", "lead-1")

	require.NoError(t, err)
	assert.Equal(t, entity.StageMeetingScheduled, l.Status)
	assert.Equal(t, entity.CategoryHot, l.Category())
	require.NotNil(t, l.ChannelID)
	assert.Equal(t, "ch-1", *l.ChannelID)
	require.NotNil(t, l.MeetingAt)
	assert.True(t, meeting.Equal(*l.MeetingAt))
	assert.Equal(t, 1500.0, l.CustomFields["budget"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM leads WHERE owner_id = $1 AND id = $2")).
		WithArgs("owner-2", "lead-1").
		WillReturnRows(sqlmock.NewRows(leadColumnNames))

	_, err = NewLeadRepository(db).FindByID(context.Background(), "owner-2", "lead-1")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestLeadRepositoryListNullables(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(leadColumnNames).
		AddRow("b", "owner-1", "B", "", "", "", "", "", "", 50, "form_filled", nil, nil, false, []byte(`{}`), now, now).
		AddRow("a", "owner-1", "A", "", "", "", "", "", "", 10, "sold", nil, nil, false, nil, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM leads WHERE owner_id = $1 ORDER BY created_at DESC")).
		WithArgs("owner-1").
		WillReturnRows(rows)

	leads, err := NewLeadRepository(db).List(context.Background(), "owner-1")

	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "b", leads[0].ID)
	assert.Nil(t, leads[1].ChannelID)
	assert.Nil(t, leads[1].MeetingAt)
	assert.NotNil(t, leads[1].CustomFields)
}

func TestLeadRepositoryUpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE leads SET status = $3 WHERE owner_id = $1 AND id = $2")).
		WithArgs("owner-1", "lead-1", "sold").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewLeadRepository(db).UpdateStatus(context.Background(), "owner-1", "lead-1", entity.StageSold)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadRepositoryUpdateStatusOtherOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE leads SET status")).
		WithArgs("owner-2", "lead-1", "sold").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewLeadRepository(db).UpdateStatus(context.Background(), "owner-2", "lead-1", entity.StageSold)

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestLeadRepositoryUpdateStatusFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cause := errors.New("connection refused")
	mock.ExpectExec(regexp.QuoteMeta("UPDATE leads SET status")).WillReturnError(cause)

	err = NewLeadRepository(db).UpdateStatus(context.Background(), "owner-1", "lead-1", entity.StageSold)

	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, entity.ErrNotFound)
}

func TestLeadRepositoryUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	lead := entity.NewLead("owner-1", "Ana")
	ch := "ch-9"
	lead.ChannelID = &ch
	mock.ExpectExec(regexp.QuoteMeta("UPDATE leads SET")).
		WithArgs("owner-1", lead.ID, "Ana", "", "", "", "", "", "", 50, "ch-9", nil, false, entity.CustomFields{}, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewLeadRepository(db).Update(context.Background(), lead))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadRepositoryDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM leads WHERE owner_id = $1 AND id = $2")).
		WithArgs("owner-1", "lead-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewLeadRepository(db).Delete(context.Background(), "owner-1", "lead-1"))
}
