package proof

import (
	"fmt"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/common"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

// ObjectStorage keeps uploaded proofs and serves them from a public URL.
type ObjectStorage interface {
	Exists(bucket string) (bool, error)
	Create(bucket string) error
	Put(bucket string, path string, data []byte, contentType string) error
	Get(bucket string, path string) ([]byte, error)
	URL(bucket string, path string) string
}

// GridFSStorage stores objects in MongoDB GridFS buckets. Files are expected
// to be served publicly under publicBaseURL by a separate gateway.
type GridFSStorage struct {
	publicBaseURL string
}

func (s *GridFSStorage) Exists(bucket string) (bool, error) {
	exists, err := app.DB.BucketExists(bucket)
	if err != nil {
		return false, errors.Wrapf(common.ErrTransientIO, "check bucket %s: %v", bucket, err)
	}
	return exists, nil
}

func (s *GridFSStorage) Create(bucket string) error {
	if err := app.DB.CreateBucket(bucket); err != nil {
		return errors.Wrapf(common.ErrTransientIO, "create bucket %s: %v", bucket, err)
	}
	return nil
}

func (s *GridFSStorage) Put(bucket string, path string, data []byte, contentType string) error {
	if err := app.DB.UploadFile(bucket, path, data, contentType); err != nil {
		return errors.Wrapf(common.ErrTransientIO, "upload %s/%s: %v", bucket, path, err)
	}
	return nil
}

func (s *GridFSStorage) Get(bucket string, path string) ([]byte, error) {
	data, err := app.DB.DownloadFile(bucket, path)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, errors.Wrapf(common.ErrNotFound, "file %s/%s", bucket, path)
		}
		return nil, errors.Wrapf(common.ErrTransientIO, "download %s/%s: %v", bucket, path, err)
	}
	return data, nil
}

func (s *GridFSStorage) URL(bucket string, path string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, bucket, path)
}

func NewGridFSStorage(publicBaseURL string) *GridFSStorage {
	return &GridFSStorage{publicBaseURL: publicBaseURL}
}
