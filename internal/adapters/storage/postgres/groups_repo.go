package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-care-journal/internal/domain/groups"
	"pet-care-journal/internal/platform/apperr"
)

type GroupsRepo struct {
	db *sql.DB
}

func NewGroupsRepo(db *sql.DB) *GroupsRepo {
	return &GroupsRepo{db: db}
}

const insertMembership = `
	INSERT INTO user_groups (id, user_id, group_id, role_in_group, is_owner, created_at)
	VALUES ($1,$2,$3,$4,$5,$6)`

// CreateWithOwner inserta grupo + membresía del owner en una sola transacción.
func (r *GroupsRepo) CreateWithOwner(ctx context.Context, g groups.Group, owner groups.UserGroup) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO pet_groups (id, name, owner_user_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5)
	`, g.ID, g.Name, g.OwnerUserID, g.CreatedAt, g.UpdatedAt); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, insertMembership,
		owner.ID, owner.UserID, owner.GroupID, owner.RoleInGroup, owner.IsOwner, owner.CreatedAt,
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *GroupsRepo) GetByID(ctx context.Context, id string) (groups.Group, error) {
	id, ok := lookupID(id)
	if !ok {
		return groups.Group{}, ErrNotFound
	}

	var g groups.Group
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, owner_user_id, created_at, updated_at
		FROM pet_groups
		WHERE id = $1
	`, id).Scan(&g.ID, &g.Name, &g.OwnerUserID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return groups.Group{}, ErrNotFound
		}
		return groups.Group{}, err
	}
	return g, nil
}

func (r *GroupsRepo) AddMember(ctx context.Context, m groups.UserGroup) error {
	_, err := r.db.ExecContext(ctx, insertMembership,
		m.ID, m.UserID, m.GroupID, m.RoleInGroup, m.IsOwner, m.CreatedAt,
	)
	if err != nil {
		return mapUnique(err, apperr.Duplicate("already a member"))
	}
	return nil
}

func (r *GroupsRepo) GetMembership(ctx context.Context, groupID, userID string) (groups.UserGroup, error) {
	groupID, okGroup := lookupID(groupID)
	userID, okUser := lookupID(userID)
	if !okGroup || !okUser {
		return groups.UserGroup{}, ErrNotFound
	}

	var m groups.UserGroup
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, group_id, role_in_group, is_owner, created_at
		FROM user_groups
		WHERE group_id = $1 AND user_id = $2
	`, groupID, userID).Scan(&m.ID, &m.UserID, &m.GroupID, &m.RoleInGroup, &m.IsOwner, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return groups.UserGroup{}, ErrNotFound
		}
		return groups.UserGroup{}, err
	}
	return m, nil
}

func (r *GroupsRepo) ListMembers(ctx context.Context, groupID string) ([]groups.UserGroup, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, group_id, role_in_group, is_owner, created_at
		FROM user_groups
		WHERE group_id = $1
		ORDER BY created_at ASC
	`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]groups.UserGroup, 0)
	for rows.Next() {
		var m groups.UserGroup
		if err := rows.Scan(&m.ID, &m.UserID, &m.GroupID, &m.RoleInGroup, &m.IsOwner, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *GroupsRepo) ListByUser(ctx context.Context, userID string) ([]groups.Group, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT g.id, g.name, g.owner_user_id, g.created_at, g.updated_at
		FROM pet_groups g
		JOIN user_groups ug ON ug.group_id = g.id
		WHERE ug.user_id = $1
		ORDER BY g.created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]groups.Group, 0)
	for rows.Next() {
		var g groups.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.OwnerUserID, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
