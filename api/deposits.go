package api

import (
	"bytes"
	"html/template"
	"io"
	"net/http"

	"github.com/dan13ram/clpd-settlement/common"
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/pkg/errors"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

type createDepositRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required"`
	Amount  string `json:"amount" validate:"required"`
}

type decisionRequest struct {
	Action   string `json:"action" validate:"required,oneof=approve reject"`
	Reason   string `json:"reason" validate:"required_if=Action reject"`
	Password string `json:"password" validate:"required"`
}

var approvalPage = template.Must(template.New("approval").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Review deposit {{.Deposit.Id}}</title>
<style>
body { font-family: sans-serif; max-width: 640px; margin: 0 auto; padding: 20px; }
.info { background: #f0f0f0; padding: 12px; border-radius: 4px; }
img { max-width: 100%; margin: 16px 0; }
</style>
</head>
<body>
<h1>Review deposit</h1>
<div class="info">
<p><b>ID:</b> {{.Deposit.Id}}</p>
<p><b>Amount:</b> {{.Deposit.Amount}}</p>
<p><b>Email:</b> {{.Deposit.Email}}</p>
<p><b>Address:</b> {{.Deposit.Address}}</p>
<p><b>Status:</b> {{.Deposit.Status}}</p>
<p><b>Created:</b> {{.Deposit.CreatedAt.Format "2006-01-02 15:04:05 MST"}}</p>
</div>
{{if .Deposit.ProofImageURL}}<img src="{{.Deposit.ProofImageURL}}" alt="Proof of deposit">{{end}}
<form id="decision">
<p><label>Password <input type="password" name="password" required></label></p>
<p><label>Rejection reason <input type="text" name="reason"></label></p>
<button type="submit" name="action" value="approve">Approve</button>
<button type="submit" name="action" value="reject">Reject</button>
</form>
<script>
document.getElementById("decision").addEventListener("submit", function (event) {
  event.preventDefault();
  var form = event.target;
  fetch({{.Action}}, {
    method: "POST",
    headers: { "Content-Type": "application/json" },
    body: JSON.stringify({
      action: event.submitter.value,
      reason: form.reason.value,
      password: form.password.value
    })
  })
    .then(function (response) { return response.json(); })
    .then(function (data) { alert(data.message || data.error); });
});
</script>
</body>
</html>
`))

func (h *Handler) CreateDeposit(c *gin.Context) {
	var req createDepositRequest
	if !bindJSON(c, &req) {
		return
	}

	deposit, err := h.settlement.RegisterDeposit(req.Email, req.Address, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, deposit)
}

func (h *Handler) ListDeposits(c *gin.Context) {
	deposits, err := h.settlement.ListDeposits(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deposits)
}

func (h *Handler) GetDeposit(c *gin.Context) {
	deposit, err := h.settlement.GetDeposit(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deposit)
}

// UploadProof accepts the receipt as the "file" field of a multipart form.
func (h *Handler) UploadProof(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, errors.Wrapf(common.ErrValidation, "missing proof file: %v", err))
		return
	}
	if header.Size > h.maxUploadBytes {
		respondError(c, errors.Wrapf(common.ErrValidation, "proof file exceeds %d bytes", h.maxUploadBytes))
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, errors.Wrapf(common.ErrValidation, "unreadable proof file: %v", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		respondError(c, errors.Wrapf(common.ErrValidation, "unreadable proof file: %v", err))
		return
	}

	deposit, err := h.settlement.UploadProof(c.Param("id"), header.Filename, data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deposit)
}

// ApprovalView renders the review page behind an approval link, or the
// deposit itself for clients that ask for JSON.
func (h *Handler) ApprovalView(c *gin.Context) {
	depositId := c.Param("id")
	token := c.Param("token")

	deposit, err := h.settlement.GetApprovalView(depositId, token)
	if err != nil {
		respondError(c, err)
		return
	}

	if c.NegotiateFormat(binding.MIMEHTML, binding.MIMEJSON) == binding.MIMEJSON {
		c.JSON(http.StatusOK, deposit)
		return
	}

	var page bytes.Buffer
	err = approvalPage.Execute(&page, struct {
		Deposit models.Deposit
		Action  string
	}{
		Deposit: deposit,
		Action:  "/deposits/" + depositId + "/approve-reject/" + token,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page.Bytes())
}

func (h *Handler) DecideDeposit(c *gin.Context) {
	var req decisionRequest
	if !bindJSON(c, &req) {
		return
	}

	depositId := c.Param("id")
	token := c.Param("token")

	var err error
	message := "Deposit approved successfully"
	if req.Action == ActionApprove {
		_, err = h.settlement.Approve(depositId, token, req.Password)
	} else {
		_, err = h.settlement.Reject(depositId, req.Reason, token, req.Password)
		message = "Deposit rejected successfully"
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: message})
}
