package notify

import (
	"context"
	"net/http"
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/models"
)

const (
	discordDescriptionLimit = 4096
)

var severityColors = map[string]int{
	models.SeverityInfo:      3447003,
	models.SeveritySuccess:   5763719,
	models.SeverityWarning:   16776960,
	models.SeverityError:     15548997,
	models.SeverityEmergency: 15158332,
}

type discordImage struct {
	URL string `json:"url"`
}

type discordEmbed struct {
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Color       int           `json:"color"`
	Image       *discordImage `json:"image,omitempty"`
	Timestamp   string        `json:"timestamp"`
}

type discordMessage struct {
	Embeds []discordEmbed `json:"embeds"`
}

// DiscordNotifier posts operator notifications to a Discord webhook as embeds
// coloured by severity.
type DiscordNotifier struct {
	webhookURL string
	httpClient *http.Client
}

func (d *DiscordNotifier) Deliver(ctx context.Context, notification models.Notification) error {
	color, ok := severityColors[notification.Severity]
	if !ok {
		color = severityColors[models.SeverityInfo]
	}

	description := notification.Message
	if len(description) > discordDescriptionLimit {
		description = description[:discordDescriptionLimit-3] + "..."
	}

	embed := discordEmbed{
		Title:       notification.Title,
		Description: description,
		Color:       color,
		Timestamp:   notification.CreatedAt.UTC().Format(time.RFC3339),
	}
	if notification.ImageURL != "" {
		embed.Image = &discordImage{URL: notification.ImageURL}
	}

	return postJSON(ctx, d.httpClient, d.webhookURL, nil, discordMessage{Embeds: []discordEmbed{embed}})
}

func NewDiscordNotifier(webhookURL string) *DiscordNotifier {
	return &DiscordNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func NewDiscordNotifierFromConfig() Notifier {
	if !app.Config.Discord.Enabled {
		return nil
	}
	return NewDiscordNotifier(app.Config.Discord.WebhookURL)
}
