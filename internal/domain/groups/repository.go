package groups

import "context"

type Repository interface {
	// CreateWithOwner inserta el grupo y la membresía del creador juntos.
	CreateWithOwner(ctx context.Context, g Group, owner UserGroup) error
	GetByID(ctx context.Context, id string) (Group, error)

	AddMember(ctx context.Context, m UserGroup) error
	GetMembership(ctx context.Context, groupID, userID string) (UserGroup, error)
	ListMembers(ctx context.Context, groupID string) ([]UserGroup, error)
	ListByUser(ctx context.Context, userID string) ([]Group, error)
}
