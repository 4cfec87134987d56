package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hadikeshavarzi/anbar-ledger/internal/apperrors"
	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	portsrepo "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/repositories"
	portssvc "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/services"
	"github.com/hadikeshavarzi/anbar-ledger/internal/dto"
	"github.com/hadikeshavarzi/anbar-ledger/internal/middleware"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type chequeService struct {
	chart      *domain.Chart
	chequeRepo portsrepo.ChequeRepositoryFacade
	partyRepo  portsrepo.PartyRepositoryFacade
	chartSvc   portssvc.ChartSvcFacade
	posting    portssvc.PostingWriterSvc
}

// NewChequeService creates the instrument lifecycle engine.
func NewChequeService(chart *domain.Chart, chequeRepo portsrepo.ChequeRepositoryFacade, partyRepo portsrepo.PartyRepositoryFacade, chartSvc portssvc.ChartSvcFacade, posting portssvc.PostingWriterSvc) portssvc.ChequeSvcFacade {
	return &chequeService{
		chart:      chart,
		chequeRepo: chequeRepo,
		partyRepo:  partyRepo,
		chartSvc:   chartSvc,
		posting:    posting,
	}
}

var _ portssvc.ChequeSvcFacade = (*chequeService)(nil)

// GetCheque retrieves a cheque scoped to a tenant.
func (s *chequeService) GetCheque(ctx context.Context, tenantID, chequeID string) (*domain.Cheque, error) {
	return s.chequeRepo.FindChequeByID(ctx, tenantID, chequeID)
}

// ListCheques retrieves cheques for a tenant, optionally filtered by status.
func (s *chequeService) ListCheques(ctx context.Context, tenantID string, status *domain.ChequeStatus, limit, offset int) ([]domain.Cheque, error) {
	return s.chequeRepo.ListCheques(ctx, tenantID, status, limit, offset)
}

// ListChequesDueBetween retrieves non-terminal cheques due inside [from, to].
// The daily reminder sweep of the notification collaborator reads from here.
func (s *chequeService) ListChequesDueBetween(ctx context.Context, tenantID string, from, to time.Time) ([]domain.Cheque, error) {
	return s.chequeRepo.ListChequesDueBetween(ctx, tenantID, from, to)
}

// ListCheckbooks retrieves all checkbooks of a tenant.
func (s *chequeService) ListCheckbooks(ctx context.Context, tenantID string) ([]domain.Checkbook, error) {
	return s.chequeRepo.ListCheckbooks(ctx, tenantID)
}

// CreateReceivable records a cheque handed over by a customer. Recording
// custody posts nothing; the first ledger movement happens on transition.
func (s *chequeService) CreateReceivable(ctx context.Context, tenantID string, req dto.CreateChequeRequest, userID string) (*domain.Cheque, error) {
	tx, err := s.chequeRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.chequeRepo.Rollback(ctx, tx)

	ownerAcc, err := s.chartSvc.ResolveOrCreateDetailAccountInTx(ctx, tx, tenantID, domain.DetailCustomer, req.CustomerID, "", userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cheque := domain.Cheque{
		ChequeID:   uuid.NewString(),
		TenantID:   tenantID,
		ChequeType: domain.ChequeReceivable,
		Amount:     req.Amount,
		SerialNo:   req.SerialNo,
		DueDate:    req.DueDate,
		Status:     domain.ChequePending,
		OwnerID:    ownerAcc.TafsiliID,
		Note:       req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.chequeRepo.SaveCheque(ctx, tx, cheque); err != nil {
		return nil, err
	}
	if err := s.chequeRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &cheque, nil
}

// CreateCheckbook registers a checkbook drawing on a bank account.
func (s *chequeService) CreateCheckbook(ctx context.Context, tenantID string, req dto.CreateCheckbookRequest, userID string) (*domain.Checkbook, error) {
	if _, err := s.partyRepo.FindBankByID(ctx, nil, tenantID, req.BankID); err != nil {
		return nil, err
	}

	now := time.Now()
	checkbook := domain.Checkbook{
		CheckbookID: uuid.NewString(),
		TenantID:    tenantID,
		BankID:      req.BankID,
		Title:       req.Title,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.chequeRepo.SaveCheckbook(ctx, checkbook); err != nil {
		return nil, err
	}
	return &checkbook, nil
}

// IssueFromCheckbook issues a payable cheque from a checkbook. Issuing posts
// nothing; the outstanding-payable movement is recorded when the cheque
// passes or bounces.
func (s *chequeService) IssueFromCheckbook(ctx context.Context, tenantID, checkbookID string, req dto.IssueChequeRequest, userID string) (*domain.Cheque, error) {
	checkbook, err := s.chequeRepo.FindCheckbookByID(ctx, tenantID, checkbookID)
	if err != nil {
		return nil, err
	}

	tx, err := s.chequeRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.chequeRepo.Rollback(ctx, tx)

	receiverAcc, err := s.chartSvc.ResolveOrCreateDetailAccountInTx(ctx, tx, tenantID, domain.DetailCustomer, req.CustomerID, "", userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cheque := domain.Cheque{
		ChequeID:    uuid.NewString(),
		TenantID:    tenantID,
		ChequeType:  domain.ChequePayable,
		Amount:      req.Amount,
		SerialNo:    req.SerialNo,
		DueDate:     req.DueDate,
		Status:      domain.ChequeIssued,
		ReceiverID:  receiverAcc.TafsiliID,
		CheckbookID: checkbook.CheckbookID,
		Note:        req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.chequeRepo.SaveCheque(ctx, tx, cheque); err != nil {
		return nil, err
	}
	if err := s.chequeRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &cheque, nil
}

// DeleteCheque removes a cheque that has not moved yet.
func (s *chequeService) DeleteCheque(ctx context.Context, tenantID, chequeID string) error {
	cheque, err := s.chequeRepo.FindChequeByID(ctx, tenantID, chequeID)
	if err != nil {
		return err
	}
	if cheque.Status != domain.ChequePending && cheque.Status != domain.ChequeIssued {
		return fmt.Errorf("%w: cheque %s is %s", ErrInstrumentNotRemovable, chequeID, cheque.Status)
	}
	return s.chequeRepo.DeleteCheque(ctx, tenantID, chequeID)
}

// transitionPlan is what a lifecycle event computes once the guard passed:
// the posting lines, the resulting status, and any newly learned linkage.
type transitionPlan struct {
	entries      []domain.FinancialEntry
	newStatus    domain.ChequeStatus
	docType      domain.DocumentType
	description  string
	receiverID   string
	targetBankID string
}

// runTransition is the shared atomic skeleton of every lifecycle event: lock
// and re-read the instrument, let compute validate the guard and build the
// plan, post the document, and flip the status, all in one transaction.
func (s *chequeService) runTransition(ctx context.Context, tenantID, chequeID, userID string, date time.Time, compute func(tx pgx.Tx, cheque *domain.Cheque) (*transitionPlan, error)) (*dto.TransitionResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.chequeRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.chequeRepo.Rollback(ctx, tx)

	cheque, err := s.chequeRepo.FindChequeByIDForUpdate(ctx, tx, tenantID, chequeID)
	if err != nil {
		return nil, err
	}

	plan, err := compute(tx, cheque)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	document := domain.FinancialDocument{
		TenantID:      tenantID,
		DocumentDate:  date,
		Description:   plan.description,
		Status:        domain.DocumentConfirmed,
		DocumentType:  plan.docType,
		ReferenceID:   cheque.ChequeID,
		ReferenceType: "cheque",
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	result, err := s.posting.PostPreparedInTx(ctx, tx, document, plan.entries)
	if err != nil {
		return nil, err
	}

	if err := s.chequeRepo.UpdateChequeTransition(ctx, tx, cheque.ChequeID, plan.newStatus, plan.receiverID, plan.targetBankID, userID, now); err != nil {
		return nil, err
	}

	if err := s.chequeRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Cheque transitioned",
		"cheque_id", cheque.ChequeID,
		"from", string(cheque.Status),
		"to", string(plan.newStatus),
		"document_no", result.DocumentNo,
	)
	return &dto.TransitionResult{
		ChequeID:   cheque.ChequeID,
		NewStatus:  string(plan.newStatus),
		DocumentID: result.DocumentID,
		DocumentNo: result.DocumentNo,
	}, nil
}

func guardStatus(cheque *domain.Cheque, event string, allowed ...domain.ChequeStatus) error {
	for _, st := range allowed {
		if cheque.Status == st {
			return nil
		}
	}
	return fmt.Errorf("%w: cannot %s a %s cheque", ErrInvalidTransition, event, cheque.Status)
}

// Spend endorses a held receivable cheque over to another party.
func (s *chequeService) Spend(ctx context.Context, tenantID, chequeID string, req dto.SpendChequeRequest, userID string) (*dto.TransitionResult, error) {
	return s.runTransition(ctx, tenantID, chequeID, userID, req.Date, func(tx pgx.Tx, cheque *domain.Cheque) (*transitionPlan, error) {
		if cheque.ChequeType != domain.ChequeReceivable {
			return nil, fmt.Errorf("%w: only receivable cheques can be spent", ErrInvalidTransition)
		}
		if err := guardStatus(cheque, "spend", domain.ChequePending); err != nil {
			return nil, err
		}

		receivable, err := s.chart.Account(domain.ChartCustomerReceivable)
		if err != nil {
			return nil, err
		}
		inHand, err := s.chart.Account(domain.ChartChequesInHand)
		if err != nil {
			return nil, err
		}

		targetAcc, err := s.chartSvc.ResolveOrCreateDetailAccountInTx(ctx, tx, tenantID, domain.DetailCustomer, req.TargetCustomerID, "", userID)
		if err != nil {
			return nil, err
		}

		desc := fmt.Sprintf("cheque %s spent to %s", cheque.SerialNo, targetAcc.Title)
		return &transitionPlan{
			entries: []domain.FinancialEntry{
				domain.DebitEntry(receivable.MoeinID, targetAcc.TafsiliID, cheque.Amount, desc),
				domain.CreditEntry(inHand.MoeinID, "", cheque.Amount, desc),
			},
			newStatus:   domain.ChequeSpent,
			docType:     domain.DocChequeSpend,
			description: desc,
			receiverID:  targetAcc.TafsiliID,
		}, nil
	})
}

// Deposit sends a held receivable cheque to a bank for collection.
func (s *chequeService) Deposit(ctx context.Context, tenantID, chequeID string, req dto.DepositChequeRequest, userID string) (*dto.TransitionResult, error) {
	return s.runTransition(ctx, tenantID, chequeID, userID, req.Date, func(tx pgx.Tx, cheque *domain.Cheque) (*transitionPlan, error) {
		if cheque.ChequeType != domain.ChequeReceivable {
			return nil, fmt.Errorf("%w: only receivable cheques can be deposited", ErrInvalidTransition)
		}
		if err := guardStatus(cheque, "deposit", domain.ChequePending); err != nil {
			return nil, err
		}

		bank, err := s.partyRepo.FindBankByID(ctx, tx, tenantID, req.BankID)
		if err != nil {
			return nil, err
		}

		inHand, err := s.chart.Account(domain.ChartChequesInHand)
		if err != nil {
			return nil, err
		}
		inCollection, err := s.chart.Account(domain.ChartChequesInCollection)
		if err != nil {
			return nil, err
		}

		desc := fmt.Sprintf("cheque %s deposited to %s for collection", cheque.SerialNo, bank.Title)
		return &transitionPlan{
			entries: []domain.FinancialEntry{
				domain.DebitEntry(inCollection.MoeinID, "", cheque.Amount, desc),
				domain.CreditEntry(inHand.MoeinID, "", cheque.Amount, desc),
			},
			newStatus:    domain.ChequeDeposited,
			docType:      domain.DocChequeDeposit,
			description:  desc,
			targetBankID: bank.BankID,
		}, nil
	})
}

// CashDeposit cashes a held receivable cheque directly into a cash box. The
// instrument clears immediately, so the resulting state is passed.
func (s *chequeService) CashDeposit(ctx context.Context, tenantID, chequeID string, req dto.CashDepositChequeRequest, userID string) (*dto.TransitionResult, error) {
	return s.runTransition(ctx, tenantID, chequeID, userID, req.Date, func(tx pgx.Tx, cheque *domain.Cheque) (*transitionPlan, error) {
		if cheque.ChequeType != domain.ChequeReceivable {
			return nil, fmt.Errorf("%w: only receivable cheques can be cashed", ErrInvalidTransition)
		}
		if err := guardStatus(cheque, "cash-deposit", domain.ChequePending); err != nil {
			return nil, err
		}

		cashAcc, err := s.chartSvc.ResolveOrCreateDetailAccountInTx(ctx, tx, tenantID, domain.DetailCash, req.CashID, "", userID)
		if err != nil {
			return nil, err
		}

		cash, err := s.chart.Account(domain.ChartCash)
		if err != nil {
			return nil, err
		}
		inHand, err := s.chart.Account(domain.ChartChequesInHand)
		if err != nil {
			return nil, err
		}

		desc := fmt.Sprintf("cheque %s cashed into %s", cheque.SerialNo, cashAcc.Title)
		return &transitionPlan{
			entries: []domain.FinancialEntry{
				domain.DebitEntry(cash.MoeinID, cashAcc.TafsiliID, cheque.Amount, desc),
				domain.CreditEntry(inHand.MoeinID, "", cheque.Amount, desc),
			},
			newStatus:   domain.ChequePassed,
			docType:     domain.DocChequePass,
			description: desc,
		}, nil
	})
}

// Return hands a held receivable cheque back to its original owner.
func (s *chequeService) Return(ctx context.Context, tenantID, chequeID string, req dto.ReturnChequeRequest, userID string) (*dto.TransitionResult, error) {
	return s.runTransition(ctx, tenantID, chequeID, userID, req.Date, func(tx pgx.Tx, cheque *domain.Cheque) (*transitionPlan, error) {
		if cheque.ChequeType != domain.ChequeReceivable {
			return nil, fmt.Errorf("%w: only receivable cheques can be returned", ErrInvalidTransition)
		}
		if err := guardStatus(cheque, "return", domain.ChequePending); err != nil {
			return nil, err
		}

		receivable, err := s.chart.Account(domain.ChartCustomerReceivable)
		if err != nil {
			return nil, err
		}
		inHand, err := s.chart.Account(domain.ChartChequesInHand)
		if err != nil {
			return nil, err
		}

		desc := fmt.Sprintf("cheque %s returned to owner", cheque.SerialNo)
		return &transitionPlan{
			entries: []domain.FinancialEntry{
				domain.DebitEntry(receivable.MoeinID, cheque.OwnerID, cheque.Amount, desc),
				domain.CreditEntry(inHand.MoeinID, "", cheque.Amount, desc),
			},
			newStatus:   domain.ChequeReturned,
			docType:     domain.DocChequeReturn,
			description: desc,
		}, nil
	})
}

// Pass clears a cheque. Receivables clear from collection into the target
// bank; payables clear the outstanding payable against the issuing bank,
// resolved from explicit input, then the recorded target, then the
// checkbook's bank.
func (s *chequeService) Pass(ctx context.Context, tenantID, chequeID string, req dto.PassChequeRequest, userID string) (*dto.TransitionResult, error) {
	return s.runTransition(ctx, tenantID, chequeID, userID, req.Date, func(tx pgx.Tx, cheque *domain.Cheque) (*transitionPlan, error) {
		switch cheque.ChequeType {
		case domain.ChequeReceivable:
			if err := guardStatus(cheque, "pass", domain.ChequeDeposited); err != nil {
				return nil, err
			}

			bankID := req.BankID
			if bankID == "" {
				bankID = cheque.TargetBankID
			}
			if bankID == "" {
				return nil, fmt.Errorf("%w: no target bank recorded for cheque %s", apperrors.ErrValidation, cheque.ChequeID)
			}
			bankAcc, err := s.chartSvc.ResolveOrCreateDetailAccountInTx(ctx, tx, tenantID, domain.DetailBank, bankID, "", userID)
			if err != nil {
				return nil, err
			}

			bank, err := s.chart.Account(domain.ChartBank)
			if err != nil {
				return nil, err
			}
			inCollection, err := s.chart.Account(domain.ChartChequesInCollection)
			if err != nil {
				return nil, err
			}

			desc := fmt.Sprintf("cheque %s cleared into %s", cheque.SerialNo, bankAcc.Title)
			return &transitionPlan{
				entries: []domain.FinancialEntry{
					domain.DebitEntry(bank.MoeinID, bankAcc.TafsiliID, cheque.Amount, desc),
					domain.CreditEntry(inCollection.MoeinID, "", cheque.Amount, desc),
				},
				newStatus:    domain.ChequePassed,
				docType:      domain.DocChequePass,
				description:  desc,
				targetBankID: bankID,
			}, nil

		case domain.ChequePayable:
			if err := guardStatus(cheque, "pass", domain.ChequeIssued); err != nil {
				return nil, err
			}

			bankID, err := s.resolveIssuingBank(ctx, tenantID, cheque, req.BankID)
			if err != nil {
				return nil, err
			}
			bankAcc, err := s.chartSvc.ResolveOrCreateDetailAccountInTx(ctx, tx, tenantID, domain.DetailBank, bankID, "", userID)
			if err != nil {
				return nil, err
			}

			bank, err := s.chart.Account(domain.ChartBank)
			if err != nil {
				return nil, err
			}
			payable, err := s.chart.Account(domain.ChartPayableCheques)
			if err != nil {
				return nil, err
			}

			desc := fmt.Sprintf("payable cheque %s cleared from %s", cheque.SerialNo, bankAcc.Title)
			return &transitionPlan{
				entries: []domain.FinancialEntry{
					domain.DebitEntry(payable.MoeinID, "", cheque.Amount, desc),
					domain.CreditEntry(bank.MoeinID, bankAcc.TafsiliID, cheque.Amount, desc),
				},
				newStatus:    domain.ChequePassed,
				docType:      domain.DocChequePass,
				description:  desc,
				targetBankID: bankID,
			}, nil
		}
		return nil, fmt.Errorf("%w: unknown cheque type %s", apperrors.ErrValidation, cheque.ChequeType)
	})
}

// resolveIssuingBank picks the clearing bank for a payable cheque: explicit
// request first, the instrument's recorded target second, the issuing
// checkbook's bank last.
func (s *chequeService) resolveIssuingBank(ctx context.Context, tenantID string, cheque *domain.Cheque, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if cheque.TargetBankID != "" {
		return cheque.TargetBankID, nil
	}
	if cheque.CheckbookID != "" {
		checkbook, err := s.chequeRepo.FindCheckbookByID(ctx, tenantID, cheque.CheckbookID)
		if err != nil {
			return "", err
		}
		return checkbook.BankID, nil
	}
	return "", fmt.Errorf("%w: no bank resolvable for payable cheque %s", apperrors.ErrValidation, cheque.ChequeID)
}

// Bounce marks a cheque as bounced. A receivable bounce reopens the
// receivable against the original owner, releasing whichever holding account
// the instrument currently sits in; a payable bounce reinstates the debt to
// the original receiver.
func (s *chequeService) Bounce(ctx context.Context, tenantID, chequeID string, req dto.BounceChequeRequest, userID string) (*dto.TransitionResult, error) {
	return s.runTransition(ctx, tenantID, chequeID, userID, req.Date, func(tx pgx.Tx, cheque *domain.Cheque) (*transitionPlan, error) {
		receivable, err := s.chart.Account(domain.ChartCustomerReceivable)
		if err != nil {
			return nil, err
		}

		switch cheque.ChequeType {
		case domain.ChequeReceivable:
			if err := guardStatus(cheque, "bounce", domain.ChequePending, domain.ChequeDeposited); err != nil {
				return nil, err
			}

			holdingSymbol := domain.ChartChequesInHand
			if cheque.Status == domain.ChequeDeposited {
				holdingSymbol = domain.ChartChequesInCollection
			}
			holding, err := s.chart.Account(holdingSymbol)
			if err != nil {
				return nil, err
			}

			desc := fmt.Sprintf("cheque %s bounced", cheque.SerialNo)
			return &transitionPlan{
				entries: []domain.FinancialEntry{
					domain.DebitEntry(receivable.MoeinID, cheque.OwnerID, cheque.Amount, desc),
					domain.CreditEntry(holding.MoeinID, "", cheque.Amount, desc),
				},
				newStatus:   domain.ChequeBounced,
				docType:     domain.DocChequeBounce,
				description: desc,
			}, nil

		case domain.ChequePayable:
			if err := guardStatus(cheque, "bounce", domain.ChequeIssued); err != nil {
				return nil, err
			}

			payable, err := s.chart.Account(domain.ChartPayableCheques)
			if err != nil {
				return nil, err
			}

			desc := fmt.Sprintf("payable cheque %s bounced", cheque.SerialNo)
			return &transitionPlan{
				entries: []domain.FinancialEntry{
					domain.DebitEntry(payable.MoeinID, "", cheque.Amount, desc),
					domain.CreditEntry(receivable.MoeinID, cheque.ReceiverID, cheque.Amount, desc),
				},
				newStatus:   domain.ChequeBounced,
				docType:     domain.DocChequeBounce,
				description: desc,
			}, nil
		}
		return nil, fmt.Errorf("%w: unknown cheque type %s", apperrors.ErrValidation, cheque.ChequeType)
	})
}
