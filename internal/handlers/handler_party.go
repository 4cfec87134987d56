package handlers

import (
	"net/http"

	portssvc "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/services"
	"github.com/hadikeshavarzi/anbar-ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// partyHandler handles business-record and detail-account routes.
type partyHandler struct {
	party portssvc.PartySvcFacade
	chart portssvc.ChartSvcFacade
}

func newPartyHandler(party portssvc.PartySvcFacade, chart portssvc.ChartSvcFacade) *partyHandler {
	return &partyHandler{party: party, chart: chart}
}

// registerPartyRoutes registers customer/bank/cash/POS and detail-account routes.
func registerPartyRoutes(rg *gin.RouterGroup, party portssvc.PartySvcFacade, chart portssvc.ChartSvcFacade) {
	h := newPartyHandler(party, chart)

	rg.POST("/customers", h.createCustomer)
	rg.GET("/customers", h.listCustomers)

	rg.POST("/banks", h.createBank)
	rg.GET("/banks", h.listBanks)

	rg.POST("/cashes", h.createCash)
	rg.GET("/cashes", h.listCashes)

	rg.POST("/pos-terminals", h.createPos)
	rg.GET("/pos-terminals", h.listPosTerminals)

	rg.GET("/detail-accounts", h.listDetailAccounts)
}

// createCustomer godoc
// @Summary Register a customer
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} domain.Customer
// @Security BearerAuth
// @Router /customers [post]
func (h *partyHandler) createCustomer(c *gin.Context) {
	tenantID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	customer, err := h.party.CreateCustomer(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, customer)
}

// listCustomers godoc
// @Summary List customers
// @Tags parties
// @Produce  json
// @Success 200 {array} domain.Customer
// @Security BearerAuth
// @Router /customers [get]
func (h *partyHandler) listCustomers(c *gin.Context) {
	tenantID, _, ok := requestScope(c)
	if !ok {
		return
	}

	limit, offset := paginationParams(c)
	customers, err := h.party.ListCustomers(c.Request.Context(), tenantID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, customers)
}

// createBank godoc
// @Summary Register a bank account
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   bank body dto.CreateBankRequest true "Bank details"
// @Success 201 {object} domain.BankAccount
// @Security BearerAuth
// @Router /banks [post]
func (h *partyHandler) createBank(c *gin.Context) {
	tenantID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	bank, err := h.party.CreateBank(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, bank)
}

// listBanks godoc
// @Summary List bank accounts
// @Tags parties
// @Produce  json
// @Success 200 {array} domain.BankAccount
// @Security BearerAuth
// @Router /banks [get]
func (h *partyHandler) listBanks(c *gin.Context) {
	tenantID, _, ok := requestScope(c)
	if !ok {
		return
	}

	banks, err := h.party.ListBanks(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, banks)
}

// createCash godoc
// @Summary Register a cash box
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   cash body dto.CreateCashRequest true "Cash box details"
// @Success 201 {object} domain.CashBox
// @Security BearerAuth
// @Router /cashes [post]
func (h *partyHandler) createCash(c *gin.Context) {
	tenantID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateCashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cash, err := h.party.CreateCash(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, cash)
}

// listCashes godoc
// @Summary List cash boxes
// @Tags parties
// @Produce  json
// @Success 200 {array} domain.CashBox
// @Security BearerAuth
// @Router /cashes [get]
func (h *partyHandler) listCashes(c *gin.Context) {
	tenantID, _, ok := requestScope(c)
	if !ok {
		return
	}

	cashes, err := h.party.ListCashes(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, cashes)
}

// createPos godoc
// @Summary Register a POS terminal
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   pos body dto.CreatePosRequest true "POS details"
// @Success 201 {object} domain.PosTerminal
// @Security BearerAuth
// @Router /pos-terminals [post]
func (h *partyHandler) createPos(c *gin.Context) {
	tenantID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreatePosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	pos, err := h.party.CreatePos(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, pos)
}

// listPosTerminals godoc
// @Summary List POS terminals
// @Tags parties
// @Produce  json
// @Success 200 {array} domain.PosTerminal
// @Security BearerAuth
// @Router /pos-terminals [get]
func (h *partyHandler) listPosTerminals(c *gin.Context) {
	tenantID, _, ok := requestScope(c)
	if !ok {
		return
	}

	terminals, err := h.party.ListPosTerminals(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, terminals)
}

// listDetailAccounts godoc
// @Summary List detail accounts
// @Tags chart
// @Produce  json
// @Success 200 {array} dto.DetailAccountResponse
// @Security BearerAuth
// @Router /detail-accounts [get]
func (h *partyHandler) listDetailAccounts(c *gin.Context) {
	tenantID, _, ok := requestScope(c)
	if !ok {
		return
	}

	limit, offset := paginationParams(c)
	accounts, err := h.chart.ListDetailAccounts(c.Request.Context(), tenantID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToDetailAccountResponses(accounts))
}
