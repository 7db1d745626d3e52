package api

import (
	"net/http"

	"github.com/dan13ram/clpd-settlement/models"
	"github.com/gin-gonic/gin"
)

type createBankRequest struct {
	Owner string          `json:"owner" validate:"required,email"`
	Info  models.BankInfo `json:"info"`
}

type createMemberRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

func (h *Handler) CreateBank(c *gin.Context) {
	var req createBankRequest
	if !bindJSON(c, &req) {
		return
	}

	bank, err := h.settlement.AddBank(req.Owner, req.Info)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bank)
}

func (h *Handler) ListBanks(c *gin.Context) {
	banks, err := h.settlement.ListBanks(c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, banks)
}

func (h *Handler) CreateApprovalMember(c *gin.Context) {
	var req createMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.settlement.AddApprovalMember(req.Name, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}
