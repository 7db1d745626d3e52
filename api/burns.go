package api

import (
	"net/http"

	"github.com/dan13ram/clpd-settlement/models"
	"github.com/gin-gonic/gin"
)

type createBurnRequest struct {
	Email   string          `json:"email" validate:"required,email"`
	Address string          `json:"address" validate:"required"`
	Amount  string          `json:"amount" validate:"required"`
	Bank    models.BankInfo `json:"bank"`
}

type burnedRequest struct {
	TransactionHash string `json:"transaction_hash" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

type rejectBurnRequest struct {
	Reason   string `json:"reason" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) CreateBurn(c *gin.Context) {
	var req createBurnRequest
	if !bindJSON(c, &req) {
		return
	}

	burn, err := h.settlement.RequestBurn(req.Email, req.Address, req.Amount, req.Bank)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, burn)
}

func (h *Handler) ListBurns(c *gin.Context) {
	burns, err := h.settlement.ListBurnRequests(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, burns)
}

func (h *Handler) GetBurn(c *gin.Context) {
	burn, err := h.settlement.GetBurnRequest(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, burn)
}

func (h *Handler) MarkBurned(c *gin.Context) {
	var req burnedRequest
	if !bindJSON(c, &req) {
		return
	}

	burn, err := h.settlement.MarkBurned(c.Param("id"), req.TransactionHash, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, burn)
}

func (h *Handler) RejectBurn(c *gin.Context) {
	var req rejectBurnRequest
	if !bindJSON(c, &req) {
		return
	}

	burn, err := h.settlement.RejectBurn(c.Param("id"), req.Reason, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, burn)
}
