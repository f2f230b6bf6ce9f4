package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"pet-care-journal/internal/domain/records"
	"pet-care-journal/internal/platform/pagination"
)

type RecordsRepo struct {
	db *sql.DB
}

func NewRecordsRepo(db *sql.DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

const recordColumns = `
	id, pet_id, user_id,
	title, body, is_public,
	deleted_at, created_at, updated_at`

func (r *RecordsRepo) Create(ctx context.Context, rec records.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO records (`+recordColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		rec.ID,
		rec.PetID,
		rec.UserID,
		rec.Title,
		rec.Body,
		rec.IsPublic,
		toNullTime(rec.DeletedAt),
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

// Update también sirve para el borrado lógico (deleted_at).
func (r *RecordsRepo) Update(ctx context.Context, rec records.Record) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE records
		SET
			title = $2,
			body = $3,
			is_public = $4,
			deleted_at = $5,
			updated_at = $6
		WHERE id = $1
	`,
		rec.ID,
		rec.Title,
		rec.Body,
		rec.IsPublic,
		toNullTime(rec.DeletedAt),
		rec.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

func (r *RecordsRepo) GetByID(ctx context.Context, id string) (records.Record, error) {
	id, ok := lookupID(id)
	if !ok {
		return records.Record{}, ErrNotFound
	}

	rec, err := scanRecord(r.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM records WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return records.Record{}, ErrNotFound
		}
		return records.Record{}, err
	}
	return rec, nil
}

func (r *RecordsRepo) ListPublic(ctx context.Context, page pagination.Request) ([]records.Record, int, error) {
	return r.list(ctx, `is_public = TRUE`, nil, page)
}

func (r *RecordsRepo) ListByPet(ctx context.Context, petID string, page pagination.Request) ([]records.Record, int, error) {
	return r.list(ctx, `pet_id = $1`, []any{petID}, page)
}

// list arma COUNT + página con el mismo filtro. Los borrados nunca se listan.
func (r *RecordsRepo) list(ctx context.Context, where string, args []any, page pagination.Request) ([]records.Record, int, error) {
	where = where + ` AND deleted_at IS NULL`

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	n := len(args)
	query := `
		SELECT ` + recordColumns + `
		FROM records
		WHERE ` + where + `
		ORDER BY created_at DESC
		LIMIT $` + strconv.Itoa(n+1) + ` OFFSET $` + strconv.Itoa(n+2)

	rows, err := r.db.QueryContext(ctx, query, append(args, page.Size, page.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]records.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, rec)
	}
	return out, total, rows.Err()
}

func scanRecord(s scanner) (records.Record, error) {
	var rec records.Record
	var deletedAt sql.NullTime
	if err := s.Scan(
		&rec.ID,
		&rec.PetID,
		&rec.UserID,
		&rec.Title,
		&rec.Body,
		&rec.IsPublic,
		&deletedAt,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return records.Record{}, err
	}
	rec.DeletedAt = fromNullTime(deletedAt)
	return rec, nil
}
