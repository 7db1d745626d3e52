package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dan13ram/clpd-settlement/common"
	"github.com/dan13ram/clpd-settlement/models"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func init() {
	log.SetOutput(io.Discard)
}

func TestDiscordNotifier(t *testing.T) {

	t.Run("Embed", func(t *testing.T) {
		var received discordMessage
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Nil(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		err := NewDiscordNotifier(server.URL).Deliver(context.Background(), models.Notification{
			Severity:  models.SeverityWarning,
			Title:     "Deposit Rejected",
			Message:   "**Deposit:** abc",
			ImageURL:  "https://cdn.example.com/proof.png",
			CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		})

		assert.Nil(t, err)
		assert.Len(t, received.Embeds, 1)
		embed := received.Embeds[0]
		assert.Equal(t, "Deposit Rejected", embed.Title)
		assert.Equal(t, 16776960, embed.Color)
		assert.Equal(t, "https://cdn.example.com/proof.png", embed.Image.URL)
		assert.Equal(t, "2024-01-02T03:04:05Z", embed.Timestamp)
	})

	t.Run("Severity Colors", func(t *testing.T) {
		assert.Equal(t, 3447003, severityColors[models.SeverityInfo])
		assert.Equal(t, 5763719, severityColors[models.SeveritySuccess])
		assert.Equal(t, 15548997, severityColors[models.SeverityError])
		assert.Equal(t, 15158332, severityColors[models.SeverityEmergency])
	})

	t.Run("Long Message Truncated", func(t *testing.T) {
		var received discordMessage
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&received)
		}))
		defer server.Close()

		err := NewDiscordNotifier(server.URL).Deliver(context.Background(), models.Notification{
			Severity: "unknown",
			Title:    "Long",
			Message:  strings.Repeat("x", 5000),
		})

		assert.Nil(t, err)
		assert.Len(t, received.Embeds[0].Description, discordDescriptionLimit)
		assert.Equal(t, 3447003, received.Embeds[0].Color)
		assert.Nil(t, received.Embeds[0].Image)
	})

	t.Run("Rate Limited Is Transient", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		err := NewDiscordNotifier(server.URL).Deliver(context.Background(), models.Notification{Title: "t"})

		assert.ErrorIs(t, err, common.ErrTransientIO)
	})

	t.Run("Bad Request Is External", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message": "Invalid Form Body"}`))
		}))
		defer server.Close()

		err := NewDiscordNotifier(server.URL).Deliver(context.Background(), models.Notification{Title: "t"})

		assert.ErrorIs(t, err, common.ErrExternalSource)
		assert.Contains(t, err.Error(), "Invalid Form Body")
	})

}

func TestEmailNotifier(t *testing.T) {

	t.Run("Send", func(t *testing.T) {
		var received emailMessage
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer re_key", r.Header.Get("Authorization"))
			assert.Nil(t, json.NewDecoder(r.Body).Decode(&received))
			_, _ = w.Write([]byte(`{"id": "email-1"}`))
		}))
		defer server.Close()

		err := NewEmailNotifier(server.URL, "re_key", "CLPD <no-reply@example.com>").Deliver(context.Background(), models.Notification{
			Channel:  models.ChannelUser,
			Email:    "user@example.com",
			Template: models.TemplateDepositRejected,
			TemplateData: map[string]string{
				"deposit_id": "dep-1",
				"amount":     "1000",
				"reason":     "<b>blurry</b>",
			},
		})

		assert.Nil(t, err)
		assert.Equal(t, "CLPD <no-reply@example.com>", received.From)
		assert.Equal(t, []string{"user@example.com"}, received.To)
		assert.Equal(t, "Your deposit was rejected", received.Subject)
		assert.Contains(t, received.HTML, "dep-1")
		assert.Contains(t, received.HTML, "&lt;b&gt;blurry&lt;/b&gt;")
	})

	t.Run("No Recipient", func(t *testing.T) {
		err := NewEmailNotifier("http://unused", "key", "from").Deliver(context.Background(), models.Notification{
			Template: models.TemplateNewDeposit,
		})

		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("Unknown Template", func(t *testing.T) {
		err := NewEmailNotifier("http://unused", "key", "from").Deliver(context.Background(), models.Notification{
			Email:    "user@example.com",
			Template: "welcome",
		})

		assert.ErrorIs(t, err, common.ErrValidation)
	})

}

func TestRenderEmail(t *testing.T) {
	templates := []string{
		models.TemplateNewDeposit,
		models.TemplateDepositApproved,
		models.TemplateDepositRejected,
		models.TemplateBurnReceived,
		models.TemplateBurnCompleted,
		models.TemplateBurnRejected,
	}

	for _, name := range templates {
		subject, html, err := RenderEmail(name, map[string]string{"amount": "250"})
		assert.Nil(t, err, name)
		assert.NotEmpty(t, subject, name)
		assert.Contains(t, html, "250", name)
		assert.NotContains(t, html, "<no value>", name)
	}
}
