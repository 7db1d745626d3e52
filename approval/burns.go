package approval

import (
	"fmt"
	"strings"
	"time"

	"github.com/dan13ram/clpd-settlement/common"
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/dan13ram/clpd-settlement/notify"
	"github.com/dan13ram/clpd-settlement/store"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// RequestBurn records a redemption of tokens for a fiat payout to bank.
func (c *Controller) RequestBurn(email string, address string, amount string, bank models.BankInfo) (models.BurnRequest, error) {
	email = strings.TrimSpace(email)
	if err := common.ValidateEmail(email); err != nil {
		return models.BurnRequest{}, err
	}
	normalized, err := common.NormalizeAddress(address)
	if err != nil {
		return models.BurnRequest{}, err
	}
	amount = strings.TrimSpace(amount)
	if _, err := common.ParseAmount(amount); err != nil {
		return models.BurnRequest{}, err
	}
	if err := common.ValidateStruct(bank); err != nil {
		return models.BurnRequest{}, err
	}

	createdAt := time.Now()
	burn := models.BurnRequest{
		Id:        uuid.NewString(),
		Email:     email,
		Address:   normalized,
		Amount:    amount,
		Bank:      bank,
		Status:    models.BurnStatusReceivedNotBurned,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	if err := store.CreateBurnRequest(burn); err != nil {
		return models.BurnRequest{}, err
	}
	log.Info("[APPROVAL] Registered burn request: ", burn.Id)

	notify.Operator(
		models.SeverityInfo,
		"New Burn Request",
		fmt.Sprintf(
			"Burn request %s: %s from address %s to be paid to %s, %s %s account %s",
			burn.Id, burn.Amount, burn.Address,
			bank.HolderName, bank.BankName, bank.AccountType, bank.AccountNumber,
		),
		"",
	)
	notify.User(burn.Email, models.TemplateBurnReceived, map[string]string{
		"burn_id": burn.Id,
		"amount":  burn.Amount,
	})

	return burn, nil
}

// MarkBurned records the on-chain burn that settles a request.
func (c *Controller) MarkBurned(id string, txHash string, password string) (models.BurnRequest, error) {
	if err := common.ValidateTxHash(txHash); err != nil {
		return models.BurnRequest{}, err
	}
	member, err := store.ValidateApprovalMember(password)
	if err != nil {
		return models.BurnRequest{}, err
	}

	burn, err := c.transitionBurn(id, bson.M{
		"status":                models.BurnStatusBurned,
		"burn_transaction_hash": strings.ToLower(txHash),
		"processed_by":          member.Name,
	})
	if err != nil {
		return models.BurnRequest{}, err
	}
	log.Info("[APPROVAL] Burn request burned: ", id, " by ", member.Name)

	notify.User(burn.Email, models.TemplateBurnCompleted, map[string]string{
		"burn_id":          burn.Id,
		"amount":           burn.Amount,
		"transaction_hash": burn.BurnTransactionHash,
	})
	notify.Operator(
		models.SeveritySuccess,
		"Burn Completed",
		fmt.Sprintf("Burn request %s marked burned by %s in %s", burn.Id, member.Name, burn.BurnTransactionHash),
		"",
	)

	return burn, nil
}

// RejectBurn closes a burn request without a payout. A reason is required.
func (c *Controller) RejectBurn(id string, reason string, password string) (models.BurnRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return models.BurnRequest{}, errors.Wrap(common.ErrValidation, "reason is required for rejection")
	}
	member, err := store.ValidateApprovalMember(password)
	if err != nil {
		return models.BurnRequest{}, err
	}

	burn, err := c.transitionBurn(id, bson.M{
		"status":           models.BurnStatusRejected,
		"rejection_reason": reason,
		"processed_by":     member.Name,
	})
	if err != nil {
		return models.BurnRequest{}, err
	}
	log.Info("[APPROVAL] Burn request rejected: ", id, " by ", member.Name)

	notify.User(burn.Email, models.TemplateBurnRejected, map[string]string{
		"burn_id": burn.Id,
		"amount":  burn.Amount,
		"reason":  reason,
	})
	notify.Operator(
		models.SeverityWarning,
		"Burn Rejected",
		fmt.Sprintf("Burn request %s was rejected by %s: %s", burn.Id, member.Name, reason),
		"",
	)

	return burn, nil
}

func (c *Controller) transitionBurn(id string, fields bson.M) (models.BurnRequest, error) {
	applied, err := store.TransitionBurnRequest(id, fields)
	if err != nil {
		return models.BurnRequest{}, err
	}

	burn, err := store.GetBurnRequest(id)
	if err != nil {
		return models.BurnRequest{}, err
	}
	if !applied {
		return models.BurnRequest{}, errors.Wrapf(common.ErrConflict, "burn request %s is %s", id, burn.Status)
	}
	return burn, nil
}

func (c *Controller) GetBurnRequest(id string) (models.BurnRequest, error) {
	return store.GetBurnRequest(id)
}

// ListBurnRequests returns the burn requests in status, oldest first.
func (c *Controller) ListBurnRequests(status string) ([]models.BurnRequest, error) {
	if !models.IsBurnStatus(status) {
		return nil, errors.Wrapf(common.ErrValidation, "unknown burn status %q", status)
	}
	return store.ListBurnRequestsByStatus(status)
}
