package proof

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/dan13ram/clpd-settlement/common"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

// DocumentConverter renders the first page of a PDF as an image.
type DocumentConverter interface {
	FirstPageToRaster(ctx context.Context, pdf []byte) ([]byte, error)
}

// HTTPConverter posts the document to a conversion service that answers with
// the rendered first page.
type HTTPConverter struct {
	url        string
	httpClient *http.Client
}

func (c *HTTPConverter) FirstPageToRaster(ctx context.Context, pdf []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(pdf))
	if err != nil {
		return nil, errors.Wrap(err, "build conversion request")
	}
	req.Header.Set("Content-Type", "application/pdf")
	req.Header.Set("Accept", "image/png")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(common.ErrTransientIO, "conversion request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(common.ErrExternalSource, "converter responded %d", resp.StatusCode)
	}

	raster, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return nil, errors.Wrapf(common.ErrTransientIO, "read conversion response: %v", err)
	}

	mime := mimetype.Detect(raster)
	if !isImage(mime) {
		return nil, errors.Wrapf(common.ErrExternalSource, "converter returned %s", mime.String())
	}
	return raster, nil
}

func NewHTTPConverter(url string, timeout time.Duration) *HTTPConverter {
	return &HTTPConverter{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}
