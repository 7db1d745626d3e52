// Package approval drives deposits and burn requests through their
// lifecycle. Every status change is a conditional write against the store,
// so concurrent approvers race on the write and exactly one wins.
package approval

import (
	"fmt"
	"time"

	"github.com/dan13ram/clpd-settlement/app"
)

// ProofStore normalizes an uploaded proof of deposit, stores it and returns
// its public URL.
type ProofStore interface {
	StoreProof(depositId string, filename string, data []byte) (string, error)
}

type MintResult int

const (
	Applied MintResult = iota
	NotApplicable
)

func (r MintResult) String() string {
	if r == Applied {
		return "applied"
	}
	return "not_applicable"
}

type Controller struct {
	proofs   ProofStore
	tokenTTL time.Duration
	baseURL  string
}

func NewController(proofs ProofStore, tokenTTL time.Duration, baseURL string) *Controller {
	return &Controller{
		proofs:   proofs,
		tokenTTL: tokenTTL,
		baseURL:  baseURL,
	}
}

// NewControllerFromConfig wires the controller with the configured token
// lifetime and approval base url.
func NewControllerFromConfig(proofs ProofStore) *Controller {
	return NewController(
		proofs,
		time.Duration(app.Config.Approval.TokenTTLMillis)*time.Millisecond,
		app.Config.Approval.BaseURL,
	)
}

// ApprovalLink is the one time link an operator follows to review a deposit.
func (c *Controller) ApprovalLink(depositId string, token string) string {
	return fmt.Sprintf("%s/deposits/%s/approve/%s", c.baseURL, depositId, token)
}
