package notification

import (
	"context"
	"log"

	"github.com/google/uuid"
)

type (
	// Alert is the content handed to a presentation channel when an alarm
	// fires for a still-existing food item.
	Alert struct {
		FoodID   uuid.UUID
		UserID   uuid.UUID
		FoodName string
		Expired  bool
		Note     string
	}

	// Notifier renders a user-visible notification. Implementations are
	// best-effort: a channel that is unavailable or not permitted simply
	// does not render.
	Notifier interface {
		Notify(ctx context.Context, alert Alert) error
	}

	multiNotifier struct {
		channels []Notifier
	}
)

// AlertTitle and AlertBody build the visible text for an alert.
func AlertTitle(alert Alert) string {
	if alert.Expired {
		return "Expired food!"
	}
	return "Food nearing expiration date!"
}

func AlertBody(alert Alert) string {
	body := alert.FoodName + " food nearing expiration date. Please check!"
	if alert.Expired {
		body = alert.FoodName + " Expired!"
	}
	if alert.Note != "" {
		body += " Note: " + alert.Note
	}
	return body
}

// NewMultiNotifier fans an alert out to every configured channel. Channel
// failures are logged and do not stop the remaining channels.
func NewMultiNotifier(channels ...Notifier) Notifier {
	return &multiNotifier{channels: channels}
}

func (n *multiNotifier) Notify(ctx context.Context, alert Alert) error {
	for _, channel := range n.channels {
		if err := channel.Notify(ctx, alert); err != nil {
			log.Printf("notification channel failed for %s: %v", alert.FoodName, err)
		}
	}
	return nil
}
