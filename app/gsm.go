package app

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	log "github.com/sirupsen/logrus"
)

func accessSecretVersion(client *secretmanager.Client, name string) (string, error) {
	req := &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", Config.GoogleSecretManager.ProjectId, name),
	}

	result, err := client.AccessSecretVersion(context.Background(), req)
	if err != nil {
		return "", err
	}

	return string(result.Payload.Data), nil
}

type gsmSecret struct {
	label      string
	secretName string
	target     *string
}

func readKeysFromGSM() {
	if !Config.GoogleSecretManager.Enabled {
		log.Debug("[GSM] Google Secret Manager is disabled")
		return
	}

	if Config.GoogleSecretManager.ProjectId == "" {
		log.Fatalf("[GSM] ProjectId is empty")
	}

	ctx := context.Background()
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		log.Fatalf("[GSM] Failed to create secretmanager client: %v", err)
	}
	defer client.Close()

	secrets := []gsmSecret{
		{"mongodb uri", Config.GoogleSecretManager.MongoSecretName, &Config.MongoDB.URI},
		{"vault api key", Config.GoogleSecretManager.VaultSecretName, &Config.Vault.APIKey},
		{"discord webhook url", Config.GoogleSecretManager.DiscordSecretName, &Config.Discord.WebhookURL},
		{"email api key", Config.GoogleSecretManager.EmailSecretName, &Config.Email.APIKey},
		{"http api key", Config.GoogleSecretManager.HTTPAPIKeySecretName, &Config.HTTPServer.APIKey},
	}

	for _, secret := range secrets {
		if *secret.target != "" || secret.secretName == "" {
			continue
		}

		log.Debug("[GSM] Reading ", secret.label)
		value, err := accessSecretVersion(client, secret.secretName)
		if err != nil {
			log.Fatalf("[GSM] Failed to access %s: %v", secret.label, err)
		}
		*secret.target = value
		log.Info("[GSM] Successfully read ", secret.label)
	}
}
