package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/citylifes/internal/common"
	"github.com/dmitrijs2005/citylifes/internal/logging"
	"github.com/dmitrijs2005/citylifes/internal/server/models"
	"github.com/dmitrijs2005/citylifes/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/citylifes/internal/strategy"
)

type AdminService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewAdminService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *AdminService {
	return &AdminService{db: db, repomanager: m, log: log.With("module", "admin")}
}

// CheckAdmin asks the role sources in order: the has_role function, the
// user_roles table, then get_user_role. When none gives an answer the user
// is treated as not an admin.
func (s *AdminService) CheckAdmin(ctx context.Context, userID string) (bool, strategy.Report) {
	if userID == "" {
		return false, strategy.Report{}
	}
	repo := s.repomanager.Roles(s.db)

	isAdmin, report, err := strategy.Execute(ctx,
		strategy.Strategy[bool]{
			Name: "has_role",
			Run: func(ctx context.Context) (bool, bool, error) {
				has, err := repo.HasRole(ctx, userID, models.RoleAdmin)
				if err != nil || has == nil {
					return false, false, err
				}
				return *has, true, nil
			},
		},
		strategy.Strategy[bool]{
			Name: "user_roles",
			Run: func(ctx context.Context) (bool, bool, error) {
				role, err := repo.FindRole(ctx, userID, models.RoleAdmin)
				if errors.Is(err, common.ErrorNotFound) {
					return false, false, nil
				}
				if err != nil {
					return false, false, err
				}
				return role == models.RoleAdmin, true, nil
			},
		},
		strategy.Strategy[bool]{
			Name: "get_user_role",
			Run: func(ctx context.Context) (bool, bool, error) {
				role, err := repo.PrimaryRole(ctx, userID)
				if err != nil {
					return false, false, err
				}
				return role == models.RoleAdmin, true, nil
			},
		},
	)
	if err != nil {
		s.log.Warn(ctx, "admin check inconclusive", "user_id", userID, "error", err)
		return false, report
	}

	s.log.Debug(ctx, "admin check", "user_id", userID, "source", report.Winner, "admin", isAdmin)
	return isAdmin, report
}

// IsAdmin is CheckAdmin without the report.
func (s *AdminService) IsAdmin(ctx context.Context, userID string) bool {
	ok, _ := s.CheckAdmin(ctx, userID)
	return ok
}
