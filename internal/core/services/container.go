package services

import (
	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	portsrepo "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/repositories"
	portssvc "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/services"
)

// NewServiceContainer wires all engine services against the repository
// provider and the chart resolved at startup.
func NewServiceContainer(repos portsrepo.RepositoryProvider, chart *domain.Chart) *portssvc.ServiceContainer {
	posting := NewPostingService(repos.DocumentRepo)
	chartSvc := NewChartService(chart, repos.DetailAccountRepo, repos.PartyRepo)
	charge := NewChargeService(chart, chartSvc, posting, repos.DocumentRepo)
	cheque := NewChequeService(chart, repos.ChequeRepo, repos.PartyRepo, chartSvc, posting)
	opening := NewOpeningService(chart, repos.OpeningRepo, repos.PartyRepo, chartSvc, posting)
	party := NewPartyService(repos.PartyRepo, repos.DetailAccountRepo, chartSvc)

	return &portssvc.ServiceContainer{
		Posting: posting,
		Chart:   chartSvc,
		Charge:  charge,
		Cheque:  cheque,
		Opening: opening,
		Party:   party,
	}
}
