package domain

import (
	"errors"
	"fmt"
)

// ErrChartMisconfigured indicates a required fixed moein code is absent from
// the chart of accounts. Operations that hit it fail fast and are not retried.
var ErrChartMisconfigured = errors.New("chart of accounts misconfigured")

// ChartSymbol names a fixed moein role used by the auto-posting rules and the
// cheque lifecycle. The symbol -> code mapping is deployment configuration;
// the code -> account resolution happens once at startup.
type ChartSymbol string

const (
	ChartCash                ChartSymbol = "cash"
	ChartBank                ChartSymbol = "bank"
	ChartPosFloat            ChartSymbol = "pos_float"
	ChartCustomerReceivable  ChartSymbol = "customer_receivable"
	ChartChequesInHand       ChartSymbol = "cheques_in_hand"
	ChartChequesInCollection ChartSymbol = "cheques_in_collection"
	ChartPayableCheques      ChartSymbol = "payable_cheques"
	ChartOpeningEquity       ChartSymbol = "opening_equity"
	ChartVAT                 ChartSymbol = "vat"
	ChartWarehousingIncome   ChartSymbol = "warehousing_income"
	ChartLoadingIncome       ChartSymbol = "loading_income"
	ChartUnloadingIncome     ChartSymbol = "unloading_income"
	ChartFreightIncome       ChartSymbol = "freight_income"
	ChartReturnFreightIncome ChartSymbol = "return_freight_income"
	ChartMiscIncome          ChartSymbol = "misc_income"
)

// RequiredChartSymbols lists every symbol that must resolve before any
// auto-posting rule or lifecycle transition may run.
var RequiredChartSymbols = []ChartSymbol{
	ChartCash, ChartBank, ChartPosFloat,
	ChartCustomerReceivable,
	ChartChequesInHand, ChartChequesInCollection, ChartPayableCheques,
	ChartOpeningEquity, ChartVAT,
	ChartWarehousingIncome, ChartLoadingIncome, ChartUnloadingIncome,
	ChartFreightIncome, ChartReturnFreightIncome, ChartMiscIncome,
}

// Chart holds the fixed moein accounts resolved at startup, keyed by symbol.
type Chart struct {
	accounts map[ChartSymbol]SubsidiaryAccount
}

// NewChart builds a Chart from resolved accounts. Missing required symbols
// make the constructor fail so misconfiguration is caught at startup rather
// than at first posting.
func NewChart(accounts map[ChartSymbol]SubsidiaryAccount) (*Chart, error) {
	for _, sym := range RequiredChartSymbols {
		if _, ok := accounts[sym]; !ok {
			return nil, fmt.Errorf("%w: no moein resolved for symbol %q", ErrChartMisconfigured, sym)
		}
	}
	return &Chart{accounts: accounts}, nil
}

// Account returns the fixed moein for a symbol.
func (c *Chart) Account(sym ChartSymbol) (SubsidiaryAccount, error) {
	acc, ok := c.accounts[sym]
	if !ok {
		return SubsidiaryAccount{}, fmt.Errorf("%w: no moein resolved for symbol %q", ErrChartMisconfigured, sym)
	}
	return acc, nil
}

// MoeinID is a convenience accessor for the account id behind a symbol.
func (c *Chart) MoeinID(sym ChartSymbol) (string, error) {
	acc, err := c.Account(sym)
	if err != nil {
		return "", err
	}
	return acc.MoeinID, nil
}
