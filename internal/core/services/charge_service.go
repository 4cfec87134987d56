package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	portsrepo "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/repositories"
	portssvc "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/services"
	"github.com/hadikeshavarzi/anbar-ledger/internal/dto"
	"github.com/hadikeshavarzi/anbar-ledger/internal/middleware"
	"github.com/shopspring/decimal"
)

// costCategory binds one broken-out monetary field of an operational event to
// its income moein and human label.
type costCategory struct {
	label  string
	symbol domain.ChartSymbol
	amount func(dto.ChargeCosts) decimal.Decimal
}

// costCategories is the fixed dispatch table of the income-splitting rule.
// Order determines entry order inside the posted document.
var costCategories = []costCategory{
	{"warehousing", domain.ChartWarehousingIncome, func(c dto.ChargeCosts) decimal.Decimal { return c.Warehousing }},
	{"loading", domain.ChartLoadingIncome, func(c dto.ChargeCosts) decimal.Decimal { return c.Loading }},
	{"unloading", domain.ChartUnloadingIncome, func(c dto.ChargeCosts) decimal.Decimal { return c.Unloading }},
	{"freight", domain.ChartFreightIncome, func(c dto.ChargeCosts) decimal.Decimal { return c.Freight }},
	{"tax", domain.ChartVAT, func(c dto.ChargeCosts) decimal.Decimal { return c.Tax }},
	{"return freight", domain.ChartReturnFreightIncome, func(c dto.ChargeCosts) decimal.Decimal { return c.ReturnFreight }},
	{"misc", domain.ChartMiscIncome, func(c dto.ChargeCosts) decimal.Decimal { return c.Misc }},
}

type chargeService struct {
	chart    *domain.Chart
	chartSvc portssvc.ChartSvcFacade
	posting  portssvc.PostingWriterSvc
	txMgr    portsrepo.TransactionManager
}

// NewChargeService creates the receipt/exit income-splitting rule.
func NewChargeService(chart *domain.Chart, chartSvc portssvc.ChartSvcFacade, posting portssvc.PostingWriterSvc, txMgr portsrepo.TransactionManager) portssvc.ChargeSvcFacade {
	return &chargeService{
		chart:    chart,
		chartSvc: chartSvc,
		posting:  posting,
		txMgr:    txMgr,
	}
}

var _ portssvc.ChargeSvcFacade = (*chargeService)(nil)

// PostOperationalCharge translates one goods receipt/exit event into a
// balanced posting. Who pays decides which side is itemized: the receivable
// side when the operator pays out, the income side when the customer owes.
func (s *chargeService) PostOperationalCharge(ctx context.Context, tenantID string, req dto.OperationalChargeRequest, userID string) (*dto.ChargeResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	type pickedCategory struct {
		costCategory
		value decimal.Decimal
	}
	picked := make([]pickedCategory, 0, len(costCategories))
	total := decimal.Zero
	for _, cat := range costCategories {
		v := cat.amount(req.Costs)
		if v.IsPositive() {
			picked = append(picked, pickedCategory{cat, v})
			total = total.Add(v)
		}
	}
	if total.IsZero() {
		logger.Info("Operational charge has no positive cost, nothing to post",
			"reference_no", req.ReferenceNo,
		)
		return &dto.ChargeResult{Posted: false, Total: decimal.Zero}, nil
	}

	receivableMoein, err := s.chart.Account(domain.ChartCustomerReceivable)
	if err != nil {
		return nil, err
	}

	tx, err := s.txMgr.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txMgr.Rollback(ctx, tx)

	customerAcc, err := s.chartSvc.ResolveOrCreateDetailAccountInTx(ctx, tx, tenantID, domain.DetailCustomer, req.CustomerID, "", userID)
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(picked))
	for _, c := range picked {
		labels = append(labels, c.label)
	}
	description := fmt.Sprintf("%s charges (%s) ref %s", req.Kind, strings.Join(labels, ", "), req.ReferenceNo)

	entries := make([]domain.FinancialEntry, 0, len(picked)+1)
	if req.PaymentSource != nil {
		// Operator pays out: itemized receivable debits, one aggregated
		// credit to the resolved source of funds.
		source, err := s.chartSvc.ResolveFundingSourceInTx(ctx, tx, tenantID, domain.PaymentSourceType(req.PaymentSource.Type), req.PaymentSource.SourceID)
		if err != nil {
			return nil, err
		}
		for _, c := range picked {
			entries = append(entries, domain.DebitEntry(receivableMoein.MoeinID, customerAcc.TafsiliID, c.value, c.label))
		}
		sourceTafsili := ""
		if source.Tafsili != nil {
			sourceTafsili = source.Tafsili.TafsiliID
		}
		entries = append(entries, domain.CreditEntry(source.Moein.MoeinID, sourceTafsili, total, "payment for "+req.ReferenceNo))
	} else {
		// Customer owes on account: one aggregated receivable debit,
		// itemized income credits with no detail account.
		entries = append(entries, domain.DebitEntry(receivableMoein.MoeinID, customerAcc.TafsiliID, total, "charges for "+req.ReferenceNo))
		for _, c := range picked {
			incomeMoein, err := s.chart.Account(c.symbol)
			if err != nil {
				return nil, err
			}
			entries = append(entries, domain.CreditEntry(incomeMoein.MoeinID, "", c.value, c.label))
		}
	}

	docType := domain.DocAutoReceipt
	if req.Kind == "exit" {
		docType = domain.DocAutoExit
	}
	now := time.Now()
	document := domain.FinancialDocument{
		TenantID:      tenantID,
		DocumentDate:  req.Date,
		Description:   description,
		Status:        domain.DocumentConfirmed,
		DocumentType:  docType,
		ReferenceID:   req.ReferenceNo,
		ReferenceType: req.Kind,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	result, err := s.posting.PostPreparedInTx(ctx, tx, document, entries)
	if err != nil {
		return nil, err
	}

	if err := s.txMgr.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Operational charge posted",
		"kind", req.Kind,
		"reference_no", req.ReferenceNo,
		"document_no", result.DocumentNo,
		"total", total.String(),
	)
	return &dto.ChargeResult{Posted: true, Total: total, Document: result}, nil
}
