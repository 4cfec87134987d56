package pgsql

import (
	portsrepo "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		MoeinRepo:         newPgxMoeinRepository(dbPool),
		DetailAccountRepo: newPgxDetailAccountRepository(dbPool),
		DocumentRepo:      newPgxDocumentRepository(dbPool),
		ChequeRepo:        newPgxChequeRepository(dbPool),
		OpeningRepo:       newPgxOpeningRepository(dbPool),
		PartyRepo:         newPgxPartyRepository(dbPool),
	}
}
