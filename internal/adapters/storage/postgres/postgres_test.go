package postgres

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"

	"pet-care-journal/internal/domain/monitorings"
	"pet-care-journal/internal/domain/users"
	"pet-care-journal/internal/platform/apperr"
	"pet-care-journal/internal/platform/pagination"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestUsersRepo_GetByUsername_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUsersRepo(db)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE username = \$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersRepo_Create_UniqueViolationIsDuplicate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUsersRepo(db)

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), users.User{ID: "u1", Username: "ana", Role: users.RoleUser})

	require.Error(t, err)
	assert.Equal(t, apperr.CodeDuplicate, apperr.CodeOf(err))
	assert.Equal(t, "ana is duplicated", apperr.MessageOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMonitoringsRepo_ListBetween_ScansOptionalColumns(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMonitoringsRepo(db)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 9, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "pet_id", "date",
		"weight", "vomit", "am_pill", "pm_pill",
		"urination", "defecation", "walk_cnt", "notes",
		"custom_symptom", "custom_symptom_name",
		"custom_int", "custom_int_name",
		"created_at", "updated_at",
	}).
		AddRow("m1", "p1", start, 4.2, false, true, true, 3, 2, 1, "", nil, "", nil, "", now, now).
		AddRow("m2", "p1", start.AddDate(0, 0, 1), 4.3, true, false, true, 2, 1, 2, "ok", true, "cough", int64(5), "treats", now, now)

	mock.ExpectQuery(`SELECT (.+) FROM monitorings WHERE pet_id = \$1 AND date >= \$2 AND date <= \$3 ORDER BY date ASC`).
		WithArgs("p1", start, end).
		WillReturnRows(rows)

	out, err := repo.ListBetween(context.Background(), "p1", start, end)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Nil(t, out[0].CustomSymptom)
	assert.Nil(t, out[0].CustomInt)
	require.NotNil(t, out[1].CustomSymptom)
	assert.True(t, *out[1].CustomSymptom)
	require.NotNil(t, out[1].CustomInt)
	assert.Equal(t, 5, *out[1].CustomInt)
	assert.Equal(t, "cough", out[1].CustomSymptomName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMonitoringsRepo_Create_SameDateIsInvalidRequest(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMonitoringsRepo(db)

	mock.ExpectExec(`INSERT INTO monitorings`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), monitorings.Monitoring{
		ID:    "m1",
		PetID: "p1",
		Date:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, apperr.CodeInvalidRequest, apperr.CodeOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMonitoringsRepo_Delete_MissingRowIsNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMonitoringsRepo(db)

	mock.ExpectExec(`DELETE FROM monitorings WHERE id = \$1`).
		WithArgs("nope").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "nope")

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordsRepo_ListByPet_CountsAndPages(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecordsRepo(db)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM records WHERE pet_id = \$1 AND deleted_at IS NULL`).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	mock.ExpectQuery(`FROM records WHERE pet_id = \$1 AND deleted_at IS NULL ORDER BY created_at DESC LIMIT \$2 OFFSET \$3`).
		WithArgs("p1", 2, 2).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "pet_id", "user_id", "title", "body", "is_public", "deleted_at", "created_at", "updated_at",
		}).AddRow("r1", "p1", "u1", "walk", "park", true, nil, now, now))

	out, total, err := repo.ListByPet(context.Background(), "p1", pagination.Request{Page: 1, Size: 2})

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, out, 1)
	assert.False(t, out[0].Deleted())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleOrderBy_OnlyWhitelistedColumns(t *testing.T) {
	assert.Equal(t, "due_date DESC, created_at ASC",
		scheduleOrderBy(pagination.Request{Sort: "due_date", Desc: true}))
	assert.Equal(t, "category ASC, created_at ASC",
		scheduleOrderBy(pagination.Request{Sort: "title; DROP TABLE pets"}))
}

func TestGetByID_MalformedIDIsNotFoundWithoutQuery(t *testing.T) {
	db, mock := setupMockDB(t)

	_, err := NewPetsRepo(db).GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = NewMonitoringsRepo(db).GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = NewRecordsRepo(db).GetByID(context.Background(), "42")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = NewSchedulesRepo(db).GetByID(context.Background(), "x")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = NewGroupsRepo(db).GetByID(context.Background(), "casa")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = NewGroupsRepo(db).GetMembership(context.Background(), "casa", "ana")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = NewUsersRepo(db).GetByID(context.Background(), "ana")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPetsRepo_GetByID_MissingUUIDIsNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	id := "5f0c7a2e-8a4b-4c1e-9d3f-2b6e1a7c9d10"

	mock.ExpectQuery(`FROM pets WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := NewPetsRepo(db).GetByID(context.Background(), " "+id+" ")

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSchema_MonitoringsUniquePerPetAndDate(t *testing.T) {
	s, err := schema.Parse(&monitoringRow{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	assert.Equal(t, "monitorings", s.Table)

	idx := s.LookIndex("ux_monitorings_pet_date")
	require.NotNil(t, idx)
	assert.Equal(t, "UNIQUE", idx.Class)

	cols := make([]string, 0, len(idx.Fields))
	for _, f := range idx.Fields {
		cols = append(cols, f.DBName)
	}
	assert.Equal(t, []string{"pet_id", "date"}, cols)
}

func TestSchema_UserGroupsUniqueMembership(t *testing.T) {
	s, err := schema.Parse(&userGroupRow{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	idx := s.LookIndex("ux_user_groups_user_group")
	require.NotNil(t, idx)
	assert.Equal(t, "UNIQUE", idx.Class)
}

func TestMigrate_PropagatesDatabaseErrors(t *testing.T) {
	db, _ := setupMockDB(t)

	// sin expectativas: la primera sentencia de AutoMigrate falla
	err := Migrate(db)

	assert.Error(t, err)
}
