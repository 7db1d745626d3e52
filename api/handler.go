// Package api exposes the settlement workflows over HTTP.
package api

import (
	"context"
	"net/http"

	"github.com/dan13ram/clpd-settlement/common"
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Settlement is the approval workflow as seen by the HTTP layer.
type Settlement interface {
	RegisterDeposit(email string, address string, amount string) (models.Deposit, error)
	UploadProof(depositId string, filename string, data []byte) (models.Deposit, error)
	GetApprovalView(depositId string, token string) (models.Deposit, error)
	Approve(depositId string, token string, password string) (models.Deposit, error)
	Reject(depositId string, reason string, token string, password string) (models.Deposit, error)
	GetDeposit(depositId string) (models.Deposit, error)
	ListDeposits(status string) ([]models.Deposit, error)

	RequestBurn(email string, address string, amount string, bank models.BankInfo) (models.BurnRequest, error)
	MarkBurned(id string, txHash string, password string) (models.BurnRequest, error)
	RejectBurn(id string, reason string, password string) (models.BurnRequest, error)
	GetBurnRequest(id string) (models.BurnRequest, error)
	ListBurnRequests(status string) ([]models.BurnRequest, error)

	AddBank(owner string, info models.BankInfo) (models.Bank, error)
	ListBanks(owner string) ([]models.Bank, error)
	AddApprovalMember(name string, password string) (models.ApprovalMember, error)
}

// BalanceReader serves the vault balance.
type BalanceReader interface {
	CurrentBalance(ctx context.Context) (models.BalanceSample, error)
	StoredBalance() (models.BalanceSample, error)
	HistoricalBalance(period string) ([]models.BalanceSample, error)
}

// HealthReporter summarizes the background services for /healthz.
type HealthReporter interface {
	Healthy() bool
	ServiceHealths() []models.ServiceHealth
}

type Handler struct {
	settlement     Settlement
	balances       BalanceReader
	files          FileReader
	health         HealthReporter
	maxUploadBytes int64
}

func NewHandler(settlement Settlement, balances BalanceReader, files FileReader, maxUploadBytes int64) *Handler {
	return &Handler{
		settlement:     settlement,
		balances:       balances,
		files:          files,
		maxUploadBytes: maxUploadBytes,
	}
}

// SetHealthReporter makes /healthz report the background services.
func (h *Handler) SetHealthReporter(health HealthReporter) {
	h.health = health
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, common.ErrExternalSource):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// respondError writes err with the status of its category. Internal errors
// are logged and hidden from the caller.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error("[HTTP] ", c.Request.Method, " ", c.FullPath(), ": ", err)
		message = "internal server error"
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: message})
}

// bindJSON decodes and validates a request body.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, errors.Wrapf(common.ErrValidation, "invalid request body: %v", err))
		return false
	}
	if err := common.ValidateStruct(req); err != nil {
		respondError(c, err)
		return false
	}
	return true
}
