package notification

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"foodkeeper-backend/entities"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

type (
	// TokenSource lists the FCM registration tokens for a user's devices.
	// user.UserRepository satisfies it.
	TokenSource interface {
		GetDeviceTokensByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.DeviceToken, error)
	}

	fcmNotifier struct {
		client *messaging.Client
		tokens TokenSource
	}
)

// NewFCMNotifier builds a push channel from base64-encoded Firebase service
// account credentials, the form cloud deployments can carry in an env var.
func NewFCMNotifier(credentialsBase64 string, tokens TokenSource) (Notifier, error) {
	ctx := context.Background()

	credentialsJSON, err := base64.StdEncoding.DecodeString(credentialsBase64)
	if err != nil {
		return nil, fmt.Errorf("error decoding base64 credentials: %w", err)
	}

	opt := option.WithCredentialsJSON(credentialsJSON)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting messaging client: %w", err)
	}

	return &fcmNotifier{client: client, tokens: tokens}, nil
}

func (n *fcmNotifier) Notify(ctx context.Context, alert Alert) error {
	deviceTokens, err := n.tokens.GetDeviceTokensByUserID(ctx, alert.UserID)
	if err != nil {
		return err
	}

	isExpired := "false"
	if alert.Expired {
		isExpired = "true"
	}

	for _, deviceToken := range deviceTokens {
		message := &messaging.Message{
			Token: deviceToken.Token,
			Notification: &messaging.Notification{
				Title: AlertTitle(alert),
				Body:  AlertBody(alert),
			},
			Data: map[string]string{
				"type":       "food_expiry",
				"food_id":    alert.FoodID.String(),
				"is_expired": isExpired,
			},
		}

		if _, err := n.client.Send(ctx, message); err != nil {
			// A stale or revoked token only loses this device, not the alert.
			log.Printf("failed to push notification to device %s: %v", deviceToken.ID, err)
		}
	}

	return nil
}
