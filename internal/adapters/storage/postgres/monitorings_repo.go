package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pet-care-journal/internal/domain/monitorings"
	"pet-care-journal/internal/platform/apperr"
)

type MonitoringsRepo struct {
	db *sql.DB
}

func NewMonitoringsRepo(db *sql.DB) *MonitoringsRepo {
	return &MonitoringsRepo{db: db}
}

var errMonitoringDateTaken = apperr.InvalidRequest("monitoring already exists for that date")

const monitoringColumns = `
	id, pet_id, date,
	weight, vomit, am_pill, pm_pill,
	urination, defecation, walk_cnt, notes,
	custom_symptom, custom_symptom_name,
	custom_int, custom_int_name,
	created_at, updated_at`

func (r *MonitoringsRepo) Create(ctx context.Context, m monitorings.Monitoring) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO monitorings (`+monitoringColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	`,
		m.ID,
		m.PetID,
		monitorings.DateOnly(m.Date),
		m.Weight,
		m.Vomit,
		m.AmPill,
		m.PmPill,
		m.Urination,
		m.Defecation,
		m.WalkCnt,
		m.Notes,
		toNullBool(m.CustomSymptom),
		m.CustomSymptomName,
		toNullInt(m.CustomInt),
		m.CustomIntName,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return mapUnique(err, errMonitoringDateTaken)
	}
	return nil
}

func (r *MonitoringsRepo) Update(ctx context.Context, m monitorings.Monitoring) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE monitorings
		SET
			date = $2,
			weight = $3,
			vomit = $4,
			am_pill = $5,
			pm_pill = $6,
			urination = $7,
			defecation = $8,
			walk_cnt = $9,
			notes = $10,
			custom_symptom = $11,
			custom_symptom_name = $12,
			custom_int = $13,
			custom_int_name = $14,
			updated_at = $15
		WHERE id = $1
	`,
		m.ID,
		monitorings.DateOnly(m.Date),
		m.Weight,
		m.Vomit,
		m.AmPill,
		m.PmPill,
		m.Urination,
		m.Defecation,
		m.WalkCnt,
		m.Notes,
		toNullBool(m.CustomSymptom),
		m.CustomSymptomName,
		toNullInt(m.CustomInt),
		m.CustomIntName,
		m.UpdatedAt,
	)
	if err != nil {
		return mapUnique(err, errMonitoringDateTaken)
	}
	return affectedOrNotFound(res)
}

func (r *MonitoringsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM monitorings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res)
}

func (r *MonitoringsRepo) GetByID(ctx context.Context, id string) (monitorings.Monitoring, error) {
	id, ok := lookupID(id)
	if !ok {
		return monitorings.Monitoring{}, ErrNotFound
	}

	m, err := scanMonitoring(r.db.QueryRowContext(ctx, `SELECT `+monitoringColumns+` FROM monitorings WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return monitorings.Monitoring{}, ErrNotFound
		}
		return monitorings.Monitoring{}, err
	}
	return m, nil
}

func (r *MonitoringsRepo) ExistsByPetAndDate(ctx context.Context, petID string, date time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM monitorings WHERE pet_id = $1 AND date = $2
		)
	`, petID, monitorings.DateOnly(date)).Scan(&exists)
	return exists, err
}

func (r *MonitoringsRepo) ListBetween(ctx context.Context, petID string, start, end time.Time) ([]monitorings.Monitoring, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+monitoringColumns+`
		FROM monitorings
		WHERE pet_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`, petID, monitorings.DateOnly(start), monitorings.DateOnly(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]monitorings.Monitoring, 0)
	for rows.Next() {
		m, err := scanMonitoring(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanMonitoring(s scanner) (monitorings.Monitoring, error) {
	var m monitorings.Monitoring
	var symptom sql.NullBool
	var customInt sql.NullInt64
	if err := s.Scan(
		&m.ID,
		&m.PetID,
		&m.Date,
		&m.Weight,
		&m.Vomit,
		&m.AmPill,
		&m.PmPill,
		&m.Urination,
		&m.Defecation,
		&m.WalkCnt,
		&m.Notes,
		&symptom,
		&m.CustomSymptomName,
		&customInt,
		&m.CustomIntName,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return monitorings.Monitoring{}, err
	}
	m.Date = monitorings.DateOnly(m.Date)
	if symptom.Valid {
		v := symptom.Bool
		m.CustomSymptom = &v
	}
	if customInt.Valid {
		v := int(customInt.Int64)
		m.CustomInt = &v
	}
	return m, nil
}

func toNullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

func toNullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}
