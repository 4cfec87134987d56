package handlers

import (
	"net/http"
	"time"

	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	portssvc "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/services"
	"github.com/hadikeshavarzi/anbar-ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// chequeHandler handles HTTP requests for cheques and checkbooks.
type chequeHandler struct {
	cheque portssvc.ChequeSvcFacade
}

func newChequeHandler(cheque portssvc.ChequeSvcFacade) *chequeHandler {
	return &chequeHandler{cheque: cheque}
}

// registerChequeRoutes registers cheque and checkbook routes.
func registerChequeRoutes(rg *gin.RouterGroup, cheque portssvc.ChequeSvcFacade) {
	h := newChequeHandler(cheque)

	cheques := rg.Group("/cheques")
	{
		cheques.POST("", h.createReceivable)
		cheques.GET("", h.listCheques)
		cheques.GET("/due", h.listChequesDue)
		cheques.GET("/:id", h.getCheque)
		cheques.DELETE("/:id", h.deleteCheque)

		cheques.POST("/:id/spend", h.spend)
		cheques.POST("/:id/deposit", h.deposit)
		cheques.POST("/:id/cash-deposit", h.cashDeposit)
		cheques.POST("/:id/pass", h.pass)
		cheques.POST("/:id/bounce", h.bounce)
		cheques.POST("/:id/return", h.returnCheque)
	}

	checkbooks := rg.Group("/checkbooks")
	{
		checkbooks.POST("", h.createCheckbook)
		checkbooks.GET("", h.listCheckbooks)
		checkbooks.POST("/:id/issue", h.issueCheque)
	}
}

// createReceivable godoc
// @Summary Record a received cheque
// @Description Records a receivable cheque handed over by a customer
// @Tags cheques
// @Accept  json
// @Produce  json
// @Param   cheque body dto.CreateChequeRequest true "Cheque details"
// @Success 201 {object} dto.ChequeResponse
// @Security BearerAuth
// @Router /cheques [post]
func (h *chequeHandler) createReceivable(c *gin.Context) {
	tenantID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateChequeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cheque, err := h.cheque.CreateReceivable(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, dto.ToChequeResponse(cheque))
}

// listCheques godoc
// @Summary List cheques
// @Tags cheques
// @Produce  json
// @Param   status query string false "Status filter"
// @Success 200 {array} dto.ChequeResponse
// @Security BearerAuth
// @Router /cheques [get]
func (h *chequeHandler) listCheques(c *gin.Context) {
	tenantID, _, ok := requestScope(c)
	if !ok {
		return
	}

	var status *domain.ChequeStatus
	if raw := c.Query("status"); raw != "" {
		st := domain.ChequeStatus(raw)
		status = &st
	}

	limit, offset := paginationParams(c)
	cheques, err := h.cheque.ListCheques(c.Request.Context(), tenantID, status, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToChequeResponses(cheques))
}

// listChequesDue godoc
// @Summary List cheques due in a date window
// @Description Non-terminal cheques due between from and to, for reminder sweeps
// @Tags cheques
// @Produce  json
// @Param   from query string true "Window start (RFC 3339)"
// @Param   to query string true "Window end (RFC 3339)"
// @Success 200 {array} dto.ChequeResponse
// @Security BearerAuth
// @Router /cheques/due [get]
func (h *chequeHandler) listChequesDue(c *gin.Context) {
	tenantID, _, ok := requestScope(c)
	if !ok {
		return
	}

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		respondBindError(c, err)
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		respondBindError(c, err)
		return
	}

	cheques, err := h.cheque.ListChequesDueBetween(c.Request.Context(), tenantID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToChequeResponses(cheques))
}

// getCheque godoc
// @Summary Get a cheque by ID
// @Tags cheques
// @Produce  json
// @Param   id path string true "Cheque ID"
// @Success 200 {object} dto.ChequeResponse
// @Security BearerAuth
// @Router /cheques/{id} [get]
func (h *chequeHandler) getCheque(c *gin.Context) {
	tenantID, _, ok := requestScope(c)
	if !ok {
		return
	}

	cheque, err := h.cheque.GetCheque(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToChequeResponse(cheque))
}

// deleteCheque godoc
// @Summary Delete a cheque
// @Description Deletes a cheque that has not moved from its initial state
// @Tags cheques
// @Param   id path string true "Cheque ID"
// @Success 204
// @Failure 409 {object} map[string]any "Cheque has moved"
// @Security BearerAuth
// @Router /cheques/{id} [delete]
func (h *chequeHandler) deleteCheque(c *gin.Context) {
	tenantID, _, ok := requestScope(c)
	if !ok {
		return
	}

	if err := h.cheque.DeleteCheque(c.Request.Context(), tenantID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// createCheckbook godoc
// @Summary Register a checkbook
// @Tags checkbooks
// @Accept  json
// @Produce  json
// @Param   checkbook body dto.CreateCheckbookRequest true "Checkbook details"
// @Success 201 {object} domain.Checkbook
// @Security BearerAuth
// @Router /checkbooks [post]
func (h *chequeHandler) createCheckbook(c *gin.Context) {
	tenantID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateCheckbookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	checkbook, err := h.cheque.CreateCheckbook(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, checkbook)
}

// listCheckbooks godoc
// @Summary List checkbooks
// @Tags checkbooks
// @Produce  json
// @Success 200 {array} domain.Checkbook
// @Security BearerAuth
// @Router /checkbooks [get]
func (h *chequeHandler) listCheckbooks(c *gin.Context) {
	tenantID, _, ok := requestScope(c)
	if !ok {
		return
	}

	books, err := h.cheque.ListCheckbooks(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, books)
}

// issueCheque godoc
// @Summary Issue a payable cheque from a checkbook
// @Tags checkbooks
// @Accept  json
// @Produce  json
// @Param   id path string true "Checkbook ID"
// @Param   cheque body dto.IssueChequeRequest true "Cheque details"
// @Success 201 {object} dto.ChequeResponse
// @Security BearerAuth
// @Router /checkbooks/{id}/issue [post]
func (h *chequeHandler) issueCheque(c *gin.Context) {
	tenantID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.IssueChequeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cheque, err := h.cheque.IssueFromCheckbook(c.Request.Context(), tenantID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, dto.ToChequeResponse(cheque))
}

// spend godoc
// @Summary Spend a held cheque
// @Description Endorses a pending receivable cheque over to another party
// @Tags cheques
// @Accept  json
// @Produce  json
// @Param   id path string true "Cheque ID"
// @Param   transition body dto.SpendChequeRequest true "Spend details"
// @Success 200 {object} dto.TransitionResult
// @Failure 409 {object} map[string]any "Invalid transition"
// @Security BearerAuth
// @Router /cheques/{id}/spend [post]
func (h *chequeHandler) spend(c *gin.Context) {
	tenantID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.SpendChequeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.cheque.Spend(c.Request.Context(), tenantID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, result)
}

// deposit godoc
// @Summary Deposit a held cheque for collection
// @Tags cheques
// @Accept  json
// @Produce  json
// @Param   id path string true "Cheque ID"
// @Param   transition body dto.DepositChequeRequest true "Deposit details"
// @Success 200 {object} dto.TransitionResult
// @Failure 409 {object} map[string]any "Invalid transition"
// @Security BearerAuth
// @Router /cheques/{id}/deposit [post]
func (h *chequeHandler) deposit(c *gin.Context) {
	tenantID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.DepositChequeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.cheque.Deposit(c.Request.Context(), tenantID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, result)
}

// cashDeposit godoc
// @Summary Cash a held cheque into a cash box
// @Tags cheques
// @Accept  json
// @Produce  json
// @Param   id path string true "Cheque ID"
// @Param   transition body dto.CashDepositChequeRequest true "Cash-deposit details"
// @Success 200 {object} dto.TransitionResult
// @Failure 409 {object} map[string]any "Invalid transition"
// @Security BearerAuth
// @Router /cheques/{id}/cash-deposit [post]
func (h *chequeHandler) cashDeposit(c *gin.Context) {
	tenantID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CashDepositChequeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.cheque.CashDeposit(c.Request.Context(), tenantID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, result)
}

// pass godoc
// @Summary Clear a cheque
// @Tags cheques
// @Accept  json
// @Produce  json
// @Param   id path string true "Cheque ID"
// @Param   transition body dto.PassChequeRequest true "Pass details"
// @Success 200 {object} dto.TransitionResult
// @Failure 409 {object} map[string]any "Invalid transition"
// @Security BearerAuth
// @Router /cheques/{id}/pass [post]
func (h *chequeHandler) pass(c *gin.Context) {
	tenantID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.PassChequeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.cheque.Pass(c.Request.Context(), tenantID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, result)
}

// bounce godoc
// @Summary Mark a cheque as bounced
// @Tags cheques
// @Accept  json
// @Produce  json
// @Param   id path string true "Cheque ID"
// @Param   transition body dto.BounceChequeRequest true "Bounce details"
// @Success 200 {object} dto.TransitionResult
// @Failure 409 {object} map[string]any "Invalid transition"
// @Security BearerAuth
// @Router /cheques/{id}/bounce [post]
func (h *chequeHandler) bounce(c *gin.Context) {
	tenantID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.BounceChequeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.cheque.Bounce(c.Request.Context(), tenantID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, result)
}

// returnCheque godoc
// @Summary Return a held cheque to its owner
// @Tags cheques
// @Accept  json
// @Produce  json
// @Param   id path string true "Cheque ID"
// @Param   transition body dto.ReturnChequeRequest true "Return details"
// @Success 200 {object} dto.TransitionResult
// @Failure 409 {object} map[string]any "Invalid transition"
// @Security BearerAuth
// @Router /cheques/{id}/return [post]
func (h *chequeHandler) returnCheque(c *gin.Context) {
	tenantID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.ReturnChequeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.cheque.Return(c.Request.Context(), tenantID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, result)
}
