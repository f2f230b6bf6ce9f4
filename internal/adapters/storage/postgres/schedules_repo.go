package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-care-journal/internal/domain/schedules"
	"pet-care-journal/internal/platform/pagination"
)

type SchedulesRepo struct {
	db *sql.DB
}

func NewSchedulesRepo(db *sql.DB) *SchedulesRepo {
	return &SchedulesRepo{db: db}
}

const scheduleColumns = `
	id, pet_id, user_id, assignee_id,
	category, title, body, place,
	due_date, is_completed,
	created_at, updated_at`

func (r *SchedulesRepo) Create(ctx context.Context, s schedules.Schedule) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO schedules (`+scheduleColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		s.ID,
		s.PetID,
		s.UserID,
		s.AssigneeID,
		string(s.Category),
		s.Title,
		s.Body,
		s.Place,
		s.DueDate,
		s.IsCompleted,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

func (r *SchedulesRepo) Update(ctx context.Context, s schedules.Schedule) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE schedules
		SET
			assignee_id = $2,
			category = $3,
			title = $4,
			body = $5,
			place = $6,
			due_date = $7,
			is_completed = $8,
			updated_at = $9
		WHERE id = $1
	`,
		s.ID,
		s.AssigneeID,
		string(s.Category),
		s.Title,
		s.Body,
		s.Place,
		s.DueDate,
		s.IsCompleted,
		s.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

func (r *SchedulesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

func (r *SchedulesRepo) GetByID(ctx context.Context, id string) (schedules.Schedule, error) {
	id, ok := lookupID(id)
	if !ok {
		return schedules.Schedule{}, ErrNotFound
	}

	s, err := scanSchedule(r.db.QueryRowContext(ctx, `SELECT `+scheduleColumns+` FROM schedules WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return schedules.Schedule{}, ErrNotFound
		}
		return schedules.Schedule{}, err
	}
	return s, nil
}

func (r *SchedulesRepo) ListByPet(ctx context.Context, petID string, page pagination.Request) ([]schedules.Schedule, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM schedules WHERE pet_id = $1`, petID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+scheduleColumns+`
		FROM schedules
		WHERE pet_id = $1
		ORDER BY `+scheduleOrderBy(page)+`
		LIMIT $2 OFFSET $3
	`, petID, page.Size, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]schedules.Schedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	return out, total, rows.Err()
}

// scheduleOrderBy sólo acepta columnas de la whitelist; el resto cae en category.
func scheduleOrderBy(page pagination.Request) string {
	col := page.Sort
	if !schedules.SortFields[col] {
		col = "category"
	}
	dir := "ASC"
	if page.Desc {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s, created_at ASC", col, dir)
}

func scanSchedule(s scanner) (schedules.Schedule, error) {
	var sc schedules.Schedule
	var category string
	if err := s.Scan(
		&sc.ID,
		&sc.PetID,
		&sc.UserID,
		&sc.AssigneeID,
		&category,
		&sc.Title,
		&sc.Body,
		&sc.Place,
		&sc.DueDate,
		&sc.IsCompleted,
		&sc.CreatedAt,
		&sc.UpdatedAt,
	); err != nil {
		return schedules.Schedule{}, err
	}
	sc.Category = schedules.Category(category)
	return sc, nil
}
