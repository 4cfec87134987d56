package dto

import (
	"time"

	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
)

// CreateCustomerRequest registers a counterparty. Its detail account is
// provisioned lazily on first posting.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// CreateBankRequest registers a bank account; its detail account is
// provisioned eagerly.
type CreateBankRequest struct {
	Title     string `json:"title" binding:"required"`
	AccountNo string `json:"accountNo" binding:"required"`
}

// CreateCashRequest registers a cash box; its detail account is provisioned
// eagerly.
type CreateCashRequest struct {
	Title string `json:"title" binding:"required"`
}

// CreatePosRequest registers a POS terminal; its detail account is
// provisioned eagerly.
type CreatePosRequest struct {
	Title  string `json:"title" binding:"required"`
	BankID string `json:"bankID"`
}

// DetailAccountResponse defines the data returned for a detail account.
type DetailAccountResponse struct {
	TafsiliID   string    `json:"tafsiliID"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	TafsiliType string    `json:"tafsiliType"`
	RefID       string    `json:"refID"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToDetailAccountResponse converts a domain.DetailAccount.
func ToDetailAccountResponse(a *domain.DetailAccount) DetailAccountResponse {
	return DetailAccountResponse{
		TafsiliID:   a.TafsiliID,
		Code:        a.Code,
		Title:       a.Title,
		TafsiliType: string(a.TafsiliType),
		RefID:       a.RefID,
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
	}
}

// ToDetailAccountResponses converts a slice of detail accounts.
func ToDetailAccountResponses(accounts []domain.DetailAccount) []DetailAccountResponse {
	responses := make([]DetailAccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToDetailAccountResponse(&accounts[i])
	}
	return responses
}
