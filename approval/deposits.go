package approval

import (
	"fmt"
	"strings"
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/common"
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/dan13ram/clpd-settlement/notify"
	"github.com/dan13ram/clpd-settlement/store"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// RegisterDeposit validates a fiat deposit claim and records it as pending.
func (c *Controller) RegisterDeposit(email string, address string, amount string) (models.Deposit, error) {
	email = strings.TrimSpace(email)
	if err := common.ValidateEmail(email); err != nil {
		return models.Deposit{}, err
	}
	normalized, err := common.NormalizeAddress(address)
	if err != nil {
		return models.Deposit{}, err
	}
	amount = strings.TrimSpace(amount)
	if _, err := common.ParseAmount(amount); err != nil {
		return models.Deposit{}, err
	}

	createdAt := time.Now()
	deposit := models.Deposit{
		Id:        uuid.NewString(),
		Email:     email,
		Address:   normalized,
		Amount:    amount,
		Status:    models.DepositStatusPending,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	if err := store.CreateDeposit(deposit); err != nil {
		return models.Deposit{}, err
	}
	log.Info("[APPROVAL] Registered deposit: ", deposit.Id)

	notify.Operator(
		models.SeverityInfo,
		"New Deposit",
		fmt.Sprintf("New deposit %s registered: %s for address %s (%s)", deposit.Id, deposit.Amount, deposit.Address, deposit.Email),
		"",
	)
	notify.User(deposit.Email, models.TemplateNewDeposit, map[string]string{
		"deposit_id": deposit.Id,
		"amount":     deposit.Amount,
	})

	return deposit, nil
}

// UploadProof attaches a proof of deposit to a pending deposit and sends the
// operators a fresh approval link.
func (c *Controller) UploadProof(depositId string, filename string, data []byte) (models.Deposit, error) {
	deposit, err := store.GetDeposit(depositId)
	if err != nil {
		return models.Deposit{}, err
	}
	if deposit.Status != models.DepositStatusPending {
		return models.Deposit{}, errors.Wrapf(common.ErrConflict, "deposit %s is %s", depositId, deposit.Status)
	}

	url, err := c.proofs.StoreProof(depositId, filename, data)
	if err != nil {
		return models.Deposit{}, err
	}
	if err := store.UpdateDepositFields(depositId, bson.M{"proof_image_url": url}); err != nil {
		return models.Deposit{}, err
	}
	deposit.ProofImageURL = url

	token, err := store.IssueToken(depositId, c.tokenTTL)
	if err != nil {
		return models.Deposit{}, err
	}
	log.Info("[APPROVAL] Stored proof for deposit: ", depositId)

	notify.Operator(
		models.SeverityInfo,
		"New Deposit Proof",
		fmt.Sprintf(
			"A proof was uploaded for deposit %s: %s for address %s. Review it at %s (valid until %s)",
			depositId, deposit.Amount, deposit.Address,
			c.ApprovalLink(depositId, token.Token),
			token.ExpiresAt.UTC().Format(time.RFC3339),
		),
		url,
	)

	return deposit, nil
}

// GetApprovalView returns the deposit behind an approval link.
func (c *Controller) GetApprovalView(depositId string, token string) (models.Deposit, error) {
	valid, err := store.ValidateToken(depositId, token)
	if err != nil {
		return models.Deposit{}, err
	}
	if !valid {
		return models.Deposit{}, errors.Wrap(common.ErrForbidden, "invalid or expired approval link")
	}
	return store.GetDeposit(depositId)
}

// Approve moves a pending deposit to accepted_not_minted on behalf of the
// member owning password.
func (c *Controller) Approve(depositId string, token string, password string) (models.Deposit, error) {
	member, err := c.authorize(depositId, token, password)
	if err != nil {
		return models.Deposit{}, err
	}

	err = c.decide(depositId, token, member, bson.M{
		"status":      models.DepositStatusAcceptedNotMinted,
		"approved_by": member.Name,
	})
	if err != nil {
		return models.Deposit{}, err
	}
	log.Info("[APPROVAL] Deposit approved: ", depositId, " by ", member.Name)

	deposit, err := store.GetDeposit(depositId)
	if err != nil {
		log.Error("[APPROVAL] Error reading approved deposit ", depositId, ": ", err)
		return models.Deposit{Id: depositId, Status: models.DepositStatusAcceptedNotMinted, ApprovedBy: member.Name}, nil
	}

	notify.User(deposit.Email, models.TemplateDepositApproved, map[string]string{
		"deposit_id": deposit.Id,
		"amount":     deposit.Amount,
		"address":    deposit.Address,
	})
	notify.Operator(
		models.SeveritySuccess,
		"Deposit Approved",
		fmt.Sprintf("Deposit %s was approved by %s. Amount: %s for address %s", deposit.Id, member.Name, deposit.Amount, deposit.Address),
		"",
	)

	return deposit, nil
}

// Reject moves a pending deposit to rejected. A reason is required.
func (c *Controller) Reject(depositId string, reason string, token string, password string) (models.Deposit, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return models.Deposit{}, errors.Wrap(common.ErrValidation, "reason is required for rejection")
	}

	member, err := c.authorize(depositId, token, password)
	if err != nil {
		return models.Deposit{}, err
	}

	err = c.decide(depositId, token, member, bson.M{
		"status":           models.DepositStatusRejected,
		"rejection_reason": reason,
		"rejected_by":      member.Name,
	})
	if err != nil {
		return models.Deposit{}, err
	}
	log.Info("[APPROVAL] Deposit rejected: ", depositId, " by ", member.Name)

	deposit, err := store.GetDeposit(depositId)
	if err != nil {
		log.Error("[APPROVAL] Error reading rejected deposit ", depositId, ": ", err)
		return models.Deposit{Id: depositId, Status: models.DepositStatusRejected, RejectionReason: reason, RejectedBy: member.Name}, nil
	}

	notify.User(deposit.Email, models.TemplateDepositRejected, map[string]string{
		"deposit_id": deposit.Id,
		"amount":     deposit.Amount,
		"reason":     reason,
	})
	notify.Operator(
		models.SeverityWarning,
		"Deposit Rejected",
		fmt.Sprintf("Deposit %s was rejected by %s: %s", deposit.Id, member.Name, reason),
		"",
	)

	return deposit, nil
}

// authorize resolves the approver, then checks the approval link.
func (c *Controller) authorize(depositId string, token string, password string) (models.ApprovalMember, error) {
	member, err := store.ValidateApprovalMember(password)
	if err != nil {
		return models.ApprovalMember{}, err
	}

	valid, err := store.ValidateToken(depositId, token)
	if err != nil {
		return models.ApprovalMember{}, err
	}
	if !valid {
		return models.ApprovalMember{}, errors.Wrap(common.ErrForbidden, "invalid or expired approval link")
	}
	return member, nil
}

// decide commits a decision on a pending deposit. Member and token are read
// again inside the transaction and the write only applies while the deposit
// is still pending.
func (c *Controller) decide(depositId string, token string, member models.ApprovalMember, fields bson.M) error {
	err := store.InTransaction("decide deposit", func(tx app.Database) error {
		exists, err := store.MemberExistsTx(tx, member.Id)
		if err != nil {
			return err
		}
		if !exists {
			return errors.Wrap(common.ErrUnauthorized, "approval member was removed")
		}

		valid, err := store.ValidateTokenTx(tx, depositId, token)
		if err != nil {
			return err
		}
		if !valid {
			return errors.Wrap(common.ErrForbidden, "invalid or expired approval link")
		}

		applied, err := store.TransitionDeposit(tx, depositId, models.DepositStatusPending, fields)
		if err != nil {
			return err
		}
		if !applied {
			return errors.Wrapf(common.ErrConflict, "deposit %s is no longer pending", depositId)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := store.ConsumeToken(token); err != nil {
		log.Warn("[APPROVAL] Error consuming approval token for deposit ", depositId, ": ", err)
	}
	return nil
}

// MarkMinted settles one deposit against its mint. Deposits not awaiting
// mint are reported as NotApplicable so retries stay harmless.
func (c *Controller) MarkMinted(depositId string, txHash string, logIndex uint) (MintResult, error) {
	applied, err := store.MarkDepositMinted(models.MintRecord{
		DepositId:       depositId,
		TransactionHash: txHash,
		LogIndex:        logIndex,
	})
	if err != nil {
		return NotApplicable, err
	}
	if !applied {
		log.Debug("[APPROVAL] Deposit not awaiting mint: ", depositId)
		return NotApplicable, nil
	}
	log.Info("[APPROVAL] Deposit minted: ", depositId, " in ", txHash)
	return Applied, nil
}

// MarkManyMinted settles every listed deposit or none of them.
func (c *Controller) MarkManyMinted(records []models.MintRecord) error {
	return store.MarkDepositsMinted(records)
}

func (c *Controller) GetDeposit(depositId string) (models.Deposit, error) {
	return store.GetDeposit(depositId)
}

// ListDeposits returns the deposits in status, oldest first.
func (c *Controller) ListDeposits(status string) ([]models.Deposit, error) {
	if !models.IsDepositStatus(status) {
		return nil, errors.Wrapf(common.ErrValidation, "unknown deposit status %q", status)
	}
	return store.ListDepositsByStatus(status)
}
