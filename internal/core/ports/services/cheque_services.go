package services

import (
	"context"
	"time"

	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	"github.com/hadikeshavarzi/anbar-ledger/internal/dto"
)

// ChequeReaderSvc defines the read side of the instrument lifecycle engine.
type ChequeReaderSvc interface {
	GetCheque(ctx context.Context, tenantID, chequeID string) (*domain.Cheque, error)
	ListCheques(ctx context.Context, tenantID string, status *domain.ChequeStatus, limit, offset int) ([]domain.Cheque, error)
	ListChequesDueBetween(ctx context.Context, tenantID string, from, to time.Time) ([]domain.Cheque, error)
	ListCheckbooks(ctx context.Context, tenantID string) ([]domain.Checkbook, error)
}

// ChequeWriterSvc defines instrument creation, deletion and the lifecycle
// transitions. Every transition posts and mutates atomically.
type ChequeWriterSvc interface {
	CreateReceivable(ctx context.Context, tenantID string, req dto.CreateChequeRequest, userID string) (*domain.Cheque, error)
	CreateCheckbook(ctx context.Context, tenantID string, req dto.CreateCheckbookRequest, userID string) (*domain.Checkbook, error)
	IssueFromCheckbook(ctx context.Context, tenantID, checkbookID string, req dto.IssueChequeRequest, userID string) (*domain.Cheque, error)
	DeleteCheque(ctx context.Context, tenantID, chequeID string) error

	Spend(ctx context.Context, tenantID, chequeID string, req dto.SpendChequeRequest, userID string) (*dto.TransitionResult, error)
	Deposit(ctx context.Context, tenantID, chequeID string, req dto.DepositChequeRequest, userID string) (*dto.TransitionResult, error)
	CashDeposit(ctx context.Context, tenantID, chequeID string, req dto.CashDepositChequeRequest, userID string) (*dto.TransitionResult, error)
	Return(ctx context.Context, tenantID, chequeID string, req dto.ReturnChequeRequest, userID string) (*dto.TransitionResult, error)
	Pass(ctx context.Context, tenantID, chequeID string, req dto.PassChequeRequest, userID string) (*dto.TransitionResult, error)
	Bounce(ctx context.Context, tenantID, chequeID string, req dto.BounceChequeRequest, userID string) (*dto.TransitionResult, error)
}

// ChequeSvcFacade combines the instrument lifecycle interfaces.
type ChequeSvcFacade interface {
	ChequeReaderSvc
	ChequeWriterSvc
}
