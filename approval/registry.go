package approval

import (
	"strings"

	"github.com/dan13ram/clpd-settlement/common"
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/dan13ram/clpd-settlement/store"
	log "github.com/sirupsen/logrus"
)

// AddBank registers a payout account for owner.
func (c *Controller) AddBank(owner string, info models.BankInfo) (models.Bank, error) {
	owner = strings.TrimSpace(owner)
	if err := common.ValidateEmail(owner); err != nil {
		return models.Bank{}, err
	}
	if err := common.ValidateStruct(info); err != nil {
		return models.Bank{}, err
	}

	bank, err := store.AddBank(owner, info)
	if err != nil {
		return models.Bank{}, err
	}
	log.Info("[APPROVAL] Added bank account for ", owner)
	return bank, nil
}

func (c *Controller) ListBanks(owner string) ([]models.Bank, error) {
	owner = strings.TrimSpace(owner)
	if err := common.ValidateEmail(owner); err != nil {
		return nil, err
	}
	return store.ListBanks(owner)
}

// AddApprovalMember registers an approver whose password gates decisions.
func (c *Controller) AddApprovalMember(name string, password string) (models.ApprovalMember, error) {
	member, err := store.AddApprovalMember(name, password)
	if err != nil {
		return models.ApprovalMember{}, err
	}
	log.Info("[APPROVAL] Added approval member: ", member.Name)
	return member, nil
}
