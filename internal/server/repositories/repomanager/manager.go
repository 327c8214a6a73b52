package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/citylifes/internal/dbx"
	"github.com/dmitrijs2005/citylifes/internal/server/repositories/campaigns"
	"github.com/dmitrijs2005/citylifes/internal/server/repositories/listings"
	"github.com/dmitrijs2005/citylifes/internal/server/repositories/messages"
	"github.com/dmitrijs2005/citylifes/internal/server/repositories/roles"
)

// RepositoryManager vends repositories bound to a DBTX, so services can run
// them against the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Messages(db dbx.DBTX) messages.Repository
	Listings(db dbx.DBTX) listings.Repository
	Campaigns(db dbx.DBTX) campaigns.Repository
	Roles(db dbx.DBTX) roles.Repository
}
