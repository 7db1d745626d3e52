// Package proof normalizes uploaded proofs of deposit into PNG images and
// stores them for operator review.
package proof

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/common"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	pdfMimeType = "application/pdf"
)

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

type Processor struct {
	storage   ObjectStorage
	converter DocumentConverter
	bucket    string
	maxBytes  int64
	timeout   time.Duration

	bucketMu    sync.Mutex
	bucketReady bool
}

func isImage(mime *mimetype.MIME) bool {
	return strings.HasPrefix(mime.String(), "image/")
}

// Normalize turns an image or PDF upload into PNG bytes. A PDF is
// represented by its first page.
func (p *Processor) Normalize(ctx context.Context, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.Wrap(common.ErrValidation, "proof file is empty")
	}
	if int64(len(data)) > p.maxBytes {
		return nil, errors.Wrapf(common.ErrValidation, "proof file exceeds %d bytes", p.maxBytes)
	}

	mime := mimetype.Detect(data)
	raster := data
	switch {
	case mime.Is(pdfMimeType):
		log.Debug("[PROOF] Converting pdf proof to image")
		converted, err := p.converter.FirstPageToRaster(ctx, data)
		if err != nil {
			return nil, err
		}
		raster = converted
	case isImage(mime):
	default:
		return nil, errors.Wrapf(common.ErrValidation, "unsupported proof type %s", mime.String())
	}

	img, format, err := image.Decode(bytes.NewReader(raster))
	if err != nil {
		return nil, errors.Wrapf(common.ErrValidation, "unreadable %s image: %v", mime.String(), err)
	}
	log.Debug("[PROOF] Decoded ", format, " proof ", img.Bounds().Dx(), "x", img.Bounds().Dy())

	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return nil, errors.Wrap(err, "encode png")
	}
	return out.Bytes(), nil
}

func (p *Processor) ensureBucket() error {
	p.bucketMu.Lock()
	defer p.bucketMu.Unlock()

	if p.bucketReady {
		return nil
	}
	exists, err := p.storage.Exists(p.bucket)
	if err != nil {
		return err
	}
	if !exists {
		if err := p.storage.Create(p.bucket); err != nil {
			return err
		}
	}
	p.bucketReady = true
	return nil
}

// ProofPath is the storage path of a normalized proof.
func ProofPath(depositId string, filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.Trim(unsafeNameChars.ReplaceAllString(base, "_"), "_")
	if base == "" {
		base = "proof"
	}
	return fmt.Sprintf("%s/%s.png", depositId, base)
}

// StoreProof normalizes the upload, stores it and returns its public URL.
func (p *Processor) StoreProof(depositId string, filename string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	normalized, err := p.Normalize(ctx, data)
	if err != nil {
		return "", err
	}

	if err := p.ensureBucket(); err != nil {
		return "", err
	}

	path := ProofPath(depositId, filename)
	if err := p.storage.Put(p.bucket, path, normalized, "image/png"); err != nil {
		return "", err
	}

	url := p.storage.URL(p.bucket, path)
	log.Info("[PROOF] Stored proof for deposit ", depositId, ": ", url)
	return url, nil
}

func NewProcessor(storage ObjectStorage, converter DocumentConverter, bucket string, maxBytes int64, timeout time.Duration) *Processor {
	return &Processor{
		storage:   storage,
		converter: converter,
		bucket:    bucket,
		maxBytes:  maxBytes,
		timeout:   timeout,
	}
}

func NewProcessorFromConfig(storage ObjectStorage) *Processor {
	timeout := time.Duration(app.Config.Converter.TimeoutMillis) * time.Millisecond
	return NewProcessor(
		storage,
		NewHTTPConverter(app.Config.Converter.URL, timeout),
		app.Config.ObjectStorage.Bucket,
		app.Config.ObjectStorage.MaxUploadBytes,
		timeout,
	)
}
