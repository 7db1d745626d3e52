package api

import (
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

// FileReader reads stored proof files.
type FileReader interface {
	Get(bucket string, path string) ([]byte, error)
}

// GetFile serves a stored proof so approval links and operator messages can
// embed it.
func (h *Handler) GetFile(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	data, err := h.files.Get(c.Param("bucket"), path)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, mimetype.Detect(data).String(), data)
}
