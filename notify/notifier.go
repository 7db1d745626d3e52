package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/dan13ram/clpd-settlement/common"
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/pkg/errors"
)

// Notifier delivers one outbox entry to its channel.
type Notifier interface {
	Deliver(ctx context.Context, notification models.Notification) error
}

// postJSON sends body and maps the response status onto the error categories.
// Throttling and server errors are retryable, other rejections are not.
func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "encode payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrapf(common.ErrTransientIO, "post: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return errors.Wrapf(common.ErrTransientIO, "status %d: %s", resp.StatusCode, detail)
	}
	return errors.Wrapf(common.ErrExternalSource, "status %d: %s", resp.StatusCode, detail)
}
