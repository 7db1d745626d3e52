package eth

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"cosmossdk.io/math"
	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/approval"
	"github.com/dan13ram/clpd-settlement/common"
	eth "github.com/dan13ram/clpd-settlement/eth/client"
	"github.com/dan13ram/clpd-settlement/eth/util"
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/dan13ram/clpd-settlement/notify"
	"github.com/dan13ram/clpd-settlement/store"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	MintReconcilerName = "mint reconciler"
)

// MintSettler records that deposits were minted.
type MintSettler interface {
	MarkMinted(depositId string, txHash string, logIndex uint) (approval.MintResult, error)
	MarkManyMinted(records []models.MintRecord) error
}

// Window is an inclusive block range queried in one getLogs call.
type Window struct {
	Start int64
	End   int64
}

// Windows splits [from, to] into consecutive windows of at most size blocks.
func Windows(from int64, to int64, size int64) []Window {
	windows := []Window{}
	if size <= 0 {
		return windows
	}
	for start := from; start <= to; start += size {
		end := start + size - 1
		if end > to {
			end = to
		}
		windows = append(windows, Window{Start: start, End: end})
	}
	return windows
}

type mintMatch struct {
	deposit models.Deposit
	event   *util.TokensMintedEvent
}

type MintReconcilerRunner struct {
	client  eth.EthereumClient
	token   eth.TokenContract
	settler MintSettler

	startBlockNumber   int64
	confirmations      int64
	maxQueryBlocks     int64
	decimals           uint8
	currentBlockNumber int64
	cursor             int64

	statusMu  sync.Mutex
	lastError string
}

func (x *MintReconcilerRunner) Run() {
	err := x.Reconcile()
	if err != nil {
		log.Error("[MINT RECONCILER] Run aborted: ", err)
	}

	x.statusMu.Lock()
	defer x.statusMu.Unlock()
	x.lastError = ""
	if err != nil {
		x.lastError = err.Error()
	}
}

func (x *MintReconcilerRunner) Status() models.RunnerStatus {
	x.statusMu.Lock()
	defer x.statusMu.Unlock()
	return models.RunnerStatus{
		EthBlockNumber: strconv.FormatInt(x.currentBlockNumber, 10),
		Cursor:         strconv.FormatInt(x.cursor, 10),
		LastError:      x.lastError,
	}
}

// Reconcile catches up on TokensMinted events from the stored cursor to the
// confirmed chain head, settling matching deposits. Progress is saved after
// every window, so an aborted run resumes at the first unfinished window.
func (x *MintReconcilerRunner) Reconcile() error {
	err := x.reconcile()
	if err != nil {
		notify.Operator(models.SeverityError, "Mint Reconciliation Error", fmt.Sprintf("Mint reconciliation stopped at block %d: %v", x.cursor, err), "")
	}
	return err
}

func (x *MintReconcilerRunner) reconcile() error {
	cursor, err := x.loadCursor()
	if err != nil {
		return err
	}
	x.cursor = cursor

	if err := x.UpdateCurrentBlockNumber(); err != nil {
		return err
	}

	head := x.currentBlockNumber - x.confirmations
	log.Info("[MINT RECONCILER] Last processed block: ", x.cursor, ", confirmed head: ", head)

	if x.cursor >= head {
		log.Info("[MINT RECONCILER] No new blocks to process")
		return nil
	}

	windows := Windows(x.cursor+1, head, x.maxQueryBlocks)
	if len(windows) == 0 {
		return errors.Wrapf(common.ErrValidation, "no block windows for %d-%d with max query blocks %d", x.cursor+1, head, x.maxQueryBlocks)
	}

	for _, window := range windows {
		log.Info("[MINT RECONCILER] Syncing mint events from block ", window.Start, " to block ", window.End)
		if err := x.SyncWindow(window); err != nil {
			return err
		}
		if err := store.SaveBlockCursor(models.CursorTokensMinted, window.End); err != nil {
			return err
		}
		x.cursor = window.End
	}
	return nil
}

func (x *MintReconcilerRunner) loadCursor() (int64, error) {
	cursor, err := store.GetBlockCursor(models.CursorTokensMinted)
	if err != nil {
		return 0, err
	}
	if cursor == nil {
		log.Info("[MINT RECONCILER] Initializing cursor at block ", x.startBlockNumber)
		cursor, err = store.InitBlockCursor(models.CursorTokensMinted, x.startBlockNumber)
		if err != nil {
			return 0, err
		}
	}
	return cursor.LastProcessedBlock, nil
}

func (x *MintReconcilerRunner) UpdateCurrentBlockNumber() error {
	res, err := x.client.GetBlockNumber()
	if err != nil {
		return errors.Wrapf(common.ErrTransientIO, "get block number: %v", err)
	}
	x.currentBlockNumber = int64(res)
	log.Debug("[MINT RECONCILER] Current block number: ", x.currentBlockNumber)
	return nil
}

// SyncWindow settles every mint event in window. Undecodable and unmatched
// events are reported and skipped; storage and RPC failures abort.
func (x *MintReconcilerRunner) SyncWindow(window Window) error {
	logs, err := x.token.FilterTokensMinted(uint64(window.Start), uint64(window.End))
	if err != nil {
		return errors.Wrapf(common.ErrTransientIO, "filter logs %d-%d: %v", window.Start, window.End, err)
	}
	log.Debug("[MINT RECONCILER] Events found in window: ", len(logs))
	if len(logs) == 0 {
		return nil
	}

	candidates, err := store.ListDepositsByStatus(models.DepositStatusAcceptedNotMinted)
	if err != nil {
		return err
	}

	claimed := map[string]bool{}
	matches := []mintMatch{}

	for _, raw := range logs {
		event, err := util.DecodeTokensMinted(raw)
		if err != nil {
			log.Error("[MINT RECONCILER] Error decoding event ", raw.TxHash.Hex(), ":", raw.Index, ": ", err)
			notify.Operator(
				models.SeverityError,
				"TokensMinted Event Parsing Error",
				fmt.Sprintf("Failed to decode TokensMinted event %s:%d in block %d: %v", raw.TxHash.Hex(), raw.Index, raw.BlockNumber, err),
				"",
			)
			continue
		}

		settled, err := store.FindDepositByMint(event.TransactionHash, event.LogIndex)
		if err != nil {
			return err
		}
		if settled != nil {
			log.Debug("[MINT RECONCILER] Event already settled deposit ", settled.Id, ": ", event.TransactionHash)
			continue
		}

		found := x.matchCandidates(event, candidates, claimed)
		if len(found) == 0 {
			if err := x.flagUnmatched(event, models.UnmatchedReasonNoMatch, nil); err != nil {
				return err
			}
			continue
		}
		if len(found) > 1 {
			if err := x.flagUnmatched(event, models.UnmatchedReasonAmbiguous, found); err != nil {
				return err
			}
		}

		claimed[found[0].Id] = true
		matches = append(matches, mintMatch{deposit: found[0], event: event})
	}

	applied, err := x.settle(matches)
	if err != nil {
		return err
	}

	for _, match := range applied {
		log.Info("[MINT RECONCILER] Deposit ", match.deposit.Id, " minted in ", match.event.TransactionHash)
		notify.Operator(
			models.SeveritySuccess,
			"TokensMinted Event Processed and Deposit Updated",
			x.describe(match.event)+fmt.Sprintf("\n**Deposit ID:** %s", match.deposit.Id),
			"",
		)
	}
	return nil
}

// matchCandidates returns the unclaimed deposits whose address and amount
// equal the event's, in store order.
func (x *MintReconcilerRunner) matchCandidates(event *util.TokensMintedEvent, candidates []models.Deposit, claimed map[string]bool) []models.Deposit {
	user := strings.ToLower(event.User.Hex())
	amount := math.NewIntFromBigInt(event.Amount)

	found := []models.Deposit{}
	for _, deposit := range candidates {
		if claimed[deposit.Id] || strings.ToLower(deposit.Address) != user {
			continue
		}
		expected, err := common.ToBaseUnits(deposit.Amount, x.decimals)
		if err != nil {
			log.Warn("[MINT RECONCILER] Skipping deposit ", deposit.Id, " with unusable amount: ", err)
			continue
		}
		if expected.Equal(amount) {
			found = append(found, deposit)
		}
	}
	return found
}

func (x *MintReconcilerRunner) flagUnmatched(event *util.TokensMintedEvent, reason string, candidates []models.Deposit) error {
	ids := []string{}
	for _, deposit := range candidates {
		ids = append(ids, deposit.Id)
	}

	created, err := store.FlagUnmatchedMint(models.UnmatchedMint{
		TransactionHash:  event.TransactionHash,
		LogIndex:         event.LogIndex,
		BlockNumber:      event.BlockNumber,
		RecipientAddress: strings.ToLower(event.User.Hex()),
		Amount:           event.Amount.String(),
		Reason:           reason,
		CandidateIds:     ids,
	})
	if err != nil {
		return err
	}
	if !created {
		log.Debug("[MINT RECONCILER] Event already flagged: ", event.TransactionHash)
		return nil
	}

	if reason == models.UnmatchedReasonAmbiguous {
		log.Warn("[MINT RECONCILER] Event matches several deposits, settling the first: ", ids)
		notify.Operator(
			models.SeverityWarning,
			"TokensMinted Event Matched Multiple Deposits",
			x.describe(event)+fmt.Sprintf("\n**Candidates:** %s\n**Settled:** %s", strings.Join(ids, ", "), ids[0]),
			"",
		)
		return nil
	}

	log.Warn("[MINT RECONCILER] No matching deposit for event: ", event.TransactionHash)
	notify.Operator(
		models.SeverityWarning,
		"TokensMinted Event Processed - No Matching Deposit",
		x.describe(event),
		"",
	)
	return nil
}

// settle marks the matched deposits minted in one batch. If a deposit moved
// on since the window started, the batch is retried one deposit at a time.
func (x *MintReconcilerRunner) settle(matches []mintMatch) ([]mintMatch, error) {
	if len(matches) == 0 {
		return matches, nil
	}

	records := make([]models.MintRecord, 0, len(matches))
	for _, match := range matches {
		records = append(records, models.MintRecord{
			DepositId:       match.deposit.Id,
			TransactionHash: match.event.TransactionHash,
			LogIndex:        match.event.LogIndex,
		})
	}

	err := x.settler.MarkManyMinted(records)
	if err == nil {
		return matches, nil
	}
	if !errors.Is(err, common.ErrConflict) {
		return nil, err
	}

	log.Warn("[MINT RECONCILER] Batch settlement conflicted, settling deposits one by one: ", err)
	applied := []mintMatch{}
	for i, match := range matches {
		result, err := x.settler.MarkMinted(records[i].DepositId, records[i].TransactionHash, records[i].LogIndex)
		if err != nil && !errors.Is(err, common.ErrConflict) {
			return nil, err
		}
		if err != nil || result == approval.NotApplicable {
			log.Warn("[MINT RECONCILER] Deposit ", match.deposit.Id, " was not settled by ", match.event.TransactionHash)
			continue
		}
		applied = append(applied, match)
	}
	return applied, nil
}

func (x *MintReconcilerRunner) describe(event *util.TokensMintedEvent) string {
	return fmt.Sprintf(
		"**Agent:** %s\n**User:** %s\n**Amount:** %s\n**TxHash:** %s\n**Block:** %d",
		event.Agent.Hex(),
		event.User.Hex(),
		common.FormatBaseUnits(math.NewIntFromBigInt(event.Amount), x.decimals),
		event.TransactionHash,
		event.BlockNumber,
	)
}

func newMintReconcilerRunner(client eth.EthereumClient, token eth.TokenContract, settler MintSettler) *MintReconcilerRunner {
	return &MintReconcilerRunner{
		client:           client,
		token:            token,
		settler:          settler,
		startBlockNumber: app.Config.Ethereum.StartBlockNumber,
		confirmations:    app.Config.Ethereum.Confirmations,
		maxQueryBlocks:   app.Config.Ethereum.MaxQueryBlocks,
		decimals:         app.Config.Ethereum.TokenDecimals,
	}
}

// NewMintReconciler connects to the chain and builds the reconciler runner.
func NewMintReconciler(settler MintSettler) *MintReconcilerRunner {
	log.Debug("[MINT RECONCILER] Initializing mint reconciler")
	client, err := eth.NewClient()
	if err != nil {
		log.Fatal("[MINT RECONCILER] Error initializing ethereum client: ", err)
	}
	client.ValidateNetwork()

	log.Debug("[MINT RECONCILER] Watching token contract at: ", app.Config.Ethereum.TokenAddress)
	token := eth.NewTokenContract(client, app.Config.Ethereum.TokenAddress)

	x := newMintReconcilerRunner(client, token, settler)
	log.Info("[MINT RECONCILER] Initialized mint reconciler")
	return x
}

// NewMintReconcilerService wraps the reconciler in a periodic runner service.
func NewMintReconcilerService(wg *sync.WaitGroup, settler MintSettler) app.Service {
	if !app.Config.MintReconciler.Enabled {
		log.Debug("[MINT RECONCILER] Mint reconciler disabled")
		return app.NewEmptyService(wg)
	}

	x := NewMintReconciler(settler)
	return app.NewRunnerService(
		MintReconcilerName,
		x,
		wg,
		time.Duration(app.Config.MintReconciler.IntervalMillis)*time.Millisecond,
	)
}
