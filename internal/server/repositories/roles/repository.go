package roles

import "context"

// Repository exposes the three ways the platform schema can answer "what
// role does this user have". They are tried in order by the admin check.
type Repository interface {
	// HasRole calls the has_role SQL function. A nil result means the
	// function returned NULL.
	HasRole(ctx context.Context, userID, role string) (*bool, error)
	// FindRole selects the row (userID, role) from user_roles, returning
	// common.ErrorNotFound when absent.
	FindRole(ctx context.Context, userID, role string) (string, error)
	// PrimaryRole calls the get_user_role SQL function. It returns "" when
	// the user has no role.
	PrimaryRole(ctx context.Context, userID string) (string, error)
}
