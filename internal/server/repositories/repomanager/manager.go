package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/fairhub/internal/dbx"
	"github.com/dmitrijs2005/fairhub/internal/server/repositories/comments"
	"github.com/dmitrijs2005/fairhub/internal/server/repositories/fairs"
	"github.com/dmitrijs2005/fairhub/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/fairhub/internal/server/repositories/submissions"
	"github.com/dmitrijs2005/fairhub/internal/server/repositories/users"
	"github.com/dmitrijs2005/fairhub/internal/server/repositories/votes"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Fairs(db dbx.DBTX) fairs.Repository
	Submissions(db dbx.DBTX) submissions.Repository
	Votes(db dbx.DBTX) votes.Repository
	Comments(db dbx.DBTX) comments.Repository
}
