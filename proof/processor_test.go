package proof

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/app/mocks"
	"github.com/dan13ram/clpd-settlement/common"
	proofMocks "github.com/dan13ram/clpd-settlement/proof/mocks"
	"github.com/gabriel-vasile/mimetype"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

func init() {
	log.SetOutput(io.Discard)
}

var samplePDF = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

func sampleImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	return img
}

func encodePNG(t *testing.T) []byte {
	var buf bytes.Buffer
	assert.Nil(t, png.Encode(&buf, sampleImage()))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T) []byte {
	var buf bytes.Buffer
	assert.Nil(t, jpeg.Encode(&buf, sampleImage(), nil))
	return buf.Bytes()
}

func newTestProcessor(storage ObjectStorage, converter DocumentConverter) *Processor {
	return NewProcessor(storage, converter, "deposit-proofs", 5*1024*1024, time.Second)
}

func TestNormalize(t *testing.T) {

	t.Run("JPEG To PNG", func(t *testing.T) {
		p := newTestProcessor(proofMocks.NewMockObjectStorage(t), proofMocks.NewMockDocumentConverter(t))

		out, err := p.Normalize(context.Background(), encodeJPEG(t))

		assert.Nil(t, err)
		assert.True(t, mimetype.Detect(out).Is("image/png"))
		img, err := png.Decode(bytes.NewReader(out))
		assert.Nil(t, err)
		assert.Equal(t, 4, img.Bounds().Dx())
	})

	t.Run("PDF Uses First Page", func(t *testing.T) {
		converter := proofMocks.NewMockDocumentConverter(t)
		converter.EXPECT().FirstPageToRaster(mock.Anything, samplePDF).Return(encodePNG(t), nil).Once()
		p := newTestProcessor(proofMocks.NewMockObjectStorage(t), converter)

		out, err := p.Normalize(context.Background(), samplePDF)

		assert.Nil(t, err)
		assert.True(t, mimetype.Detect(out).Is("image/png"))
	})

	t.Run("PDF Conversion Failure", func(t *testing.T) {
		converter := proofMocks.NewMockDocumentConverter(t)
		converter.EXPECT().FirstPageToRaster(mock.Anything, samplePDF).Return(nil, common.ErrExternalSource).Once()
		p := newTestProcessor(proofMocks.NewMockObjectStorage(t), converter)

		_, err := p.Normalize(context.Background(), samplePDF)

		assert.ErrorIs(t, err, common.ErrExternalSource)
	})

	t.Run("Unsupported Type", func(t *testing.T) {
		p := newTestProcessor(proofMocks.NewMockObjectStorage(t), proofMocks.NewMockDocumentConverter(t))

		_, err := p.Normalize(context.Background(), []byte("just some plain text, not a receipt"))

		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("Too Large", func(t *testing.T) {
		p := NewProcessor(proofMocks.NewMockObjectStorage(t), proofMocks.NewMockDocumentConverter(t), "b", 16, time.Second)

		_, err := p.Normalize(context.Background(), encodePNG(t))

		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("Empty", func(t *testing.T) {
		p := newTestProcessor(proofMocks.NewMockObjectStorage(t), proofMocks.NewMockDocumentConverter(t))

		_, err := p.Normalize(context.Background(), nil)

		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("Corrupt Image", func(t *testing.T) {
		p := newTestProcessor(proofMocks.NewMockObjectStorage(t), proofMocks.NewMockDocumentConverter(t))
		corrupt := encodePNG(t)[:40]

		_, err := p.Normalize(context.Background(), corrupt)

		assert.ErrorIs(t, err, common.ErrValidation)
	})

}

func TestStoreProof(t *testing.T) {

	t.Run("Creates Bucket Once", func(t *testing.T) {
		storage := proofMocks.NewMockObjectStorage(t)
		storage.EXPECT().Exists("deposit-proofs").Return(false, nil).Once()
		storage.EXPECT().Create("deposit-proofs").Return(nil).Once()
		storage.EXPECT().Put("deposit-proofs", "dep-1/receipt.png", mock.Anything, "image/png").Return(nil).Twice()
		storage.EXPECT().URL("deposit-proofs", "dep-1/receipt.png").Return("https://cdn.example.com/deposit-proofs/dep-1/receipt.png").Twice()

		p := newTestProcessor(storage, proofMocks.NewMockDocumentConverter(t))

		for i := 0; i < 2; i++ {
			url, err := p.StoreProof("dep-1", "receipt.jpg", encodeJPEG(t))
			assert.Nil(t, err)
			assert.Equal(t, "https://cdn.example.com/deposit-proofs/dep-1/receipt.png", url)
		}
	})

	t.Run("Invalid Upload Stores Nothing", func(t *testing.T) {
		storage := proofMocks.NewMockObjectStorage(t)
		p := newTestProcessor(storage, proofMocks.NewMockDocumentConverter(t))

		_, err := p.StoreProof("dep-1", "notes.txt", []byte("hello"))

		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("Upload Failure", func(t *testing.T) {
		storage := proofMocks.NewMockObjectStorage(t)
		storage.EXPECT().Exists("deposit-proofs").Return(true, nil).Once()
		storage.EXPECT().Put("deposit-proofs", mock.Anything, mock.Anything, "image/png").Return(common.ErrTransientIO).Once()

		p := newTestProcessor(storage, proofMocks.NewMockDocumentConverter(t))
		_, err := p.StoreProof("dep-1", "receipt.png", encodePNG(t))

		assert.ErrorIs(t, err, common.ErrTransientIO)
	})

}

func TestProofPath(t *testing.T) {
	assert.Equal(t, "dep-1/receipt.png", ProofPath("dep-1", "receipt.pdf"))
	assert.Equal(t, "dep-1/my_transfer_1.png", ProofPath("dep-1", "my transfer (1).jpeg"))
	assert.Equal(t, "dep-1/passwd.png", ProofPath("dep-1", "../../etc/passwd"))
	assert.Equal(t, "dep-1/proof.png", ProofPath("dep-1", ""))
}

func TestHTTPConverter(t *testing.T) {

	t.Run("Raster", func(t *testing.T) {
		raster := encodePNG(t)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/pdf", r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, samplePDF, body)
			_, _ = w.Write(raster)
		}))
		defer server.Close()

		out, err := NewHTTPConverter(server.URL, time.Second).FirstPageToRaster(context.Background(), samplePDF)

		assert.Nil(t, err)
		assert.Equal(t, raster, out)
	})

	t.Run("Not An Image", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error": "bad pdf"}`))
		}))
		defer server.Close()

		_, err := NewHTTPConverter(server.URL, time.Second).FirstPageToRaster(context.Background(), samplePDF)

		assert.ErrorIs(t, err, common.ErrExternalSource)
	})

	t.Run("Service Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := NewHTTPConverter(server.URL, time.Second).FirstPageToRaster(context.Background(), samplePDF)

		assert.ErrorIs(t, err, common.ErrExternalSource)
	})

}

func TestGridFSStorage(t *testing.T) {
	mockDB := mocks.NewMockDatabase(t)
	app.DB = mockDB
	storage := NewGridFSStorage("https://cdn.example.com")

	mockDB.EXPECT().BucketExists("proofs").Return(true, nil).Once()
	mockDB.EXPECT().UploadFile("proofs", "dep-1/a.png", []byte{1}, "image/png").Return(nil).Once()
	mockDB.EXPECT().CreateBucket("other").Return(assert.AnError).Once()
	mockDB.EXPECT().DownloadFile("proofs", "dep-1/a.png").Return([]byte{1}, nil).Once()
	mockDB.EXPECT().DownloadFile("proofs", "dep-1/missing.png").Return(nil, gridfs.ErrFileNotFound).Once()

	exists, err := storage.Exists("proofs")
	assert.Nil(t, err)
	assert.True(t, exists)
	assert.Nil(t, storage.Put("proofs", "dep-1/a.png", []byte{1}, "image/png"))
	assert.ErrorIs(t, storage.Create("other"), common.ErrTransientIO)
	assert.Equal(t, "https://cdn.example.com/proofs/dep-1/a.png", storage.URL("proofs", "dep-1/a.png"))

	data, err := storage.Get("proofs", "dep-1/a.png")
	assert.Nil(t, err)
	assert.Equal(t, []byte{1}, data)
	_, err = storage.Get("proofs", "dep-1/missing.png")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
