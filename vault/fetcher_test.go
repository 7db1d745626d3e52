package vault

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dan13ram/clpd-settlement/common"
	"github.com/stretchr/testify/assert"
)

func TestVaultAPIClient(t *testing.T) {

	t.Run("Balance", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "secret", r.Header.Get("api-key"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"balance": 12345.67}`))
		}))
		defer server.Close()

		balance, err := NewVaultAPIClient(server.URL, "secret", time.Second).FetchBalance(context.Background())

		assert.Nil(t, err)
		assert.Equal(t, 12345.67, balance)
	})

	t.Run("Non OK Status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := NewVaultAPIClient(server.URL, "wrong", time.Second).FetchBalance(context.Background())

		assert.ErrorIs(t, err, common.ErrExternalSource)
	})

	t.Run("Missing Balance", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status": "ok"}`))
		}))
		defer server.Close()

		_, err := NewVaultAPIClient(server.URL, "secret", time.Second).FetchBalance(context.Background())

		assert.ErrorIs(t, err, common.ErrExternalSource)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}))
		defer server.Close()

		_, err := NewVaultAPIClient(server.URL, "secret", time.Second).FetchBalance(context.Background())

		assert.ErrorIs(t, err, common.ErrExternalSource)
	})

	t.Run("Unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := NewVaultAPIClient(url, "secret", time.Second).FetchBalance(context.Background())

		assert.ErrorIs(t, err, common.ErrTransientIO)
	})

	t.Run("Timeout", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer server.Close()
		defer close(release)

		_, err := NewVaultAPIClient(server.URL, "secret", 20*time.Millisecond).FetchBalance(context.Background())

		assert.ErrorIs(t, err, common.ErrTransientIO)
	})

}
