package vault

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/common"
	"github.com/pkg/errors"
)

// BalanceFetcher reads the custodial vault balance from its source of truth.
// Calls may be slow; there is no latency guarantee.
type BalanceFetcher interface {
	FetchBalance(ctx context.Context) (float64, error)
}

type VaultAPIClient struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

type vaultBalanceResponse struct {
	Balance *float64 `json:"balance"`
}

func (c *VaultAPIClient) FetchBalance(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, errors.Wrap(err, "build vault request")
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrapf(common.ErrTransientIO, "vault request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, errors.Wrapf(common.ErrTransientIO, "read vault response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, errors.Wrapf(common.ErrExternalSource, "vault responded %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var parsed vaultBalanceResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, errors.Wrapf(common.ErrExternalSource, "decode vault response: %v", err)
	}
	if parsed.Balance == nil {
		return 0, errors.Wrap(common.ErrExternalSource, "vault response has no balance")
	}
	return *parsed.Balance, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s...", s[:n])
}

func NewVaultAPIClient(url string, apiKey string, timeout time.Duration) *VaultAPIClient {
	return &VaultAPIClient{
		url:        url,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func NewVaultAPIClientFromConfig() *VaultAPIClient {
	return NewVaultAPIClient(
		app.Config.Vault.APIURL,
		app.Config.Vault.APIKey,
		time.Duration(app.Config.Vault.FetchTimeoutMillis)*time.Millisecond,
	)
}
