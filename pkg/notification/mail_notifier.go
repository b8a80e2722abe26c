package notification

import (
	"context"
	"fmt"

	"foodkeeper-backend/entities"
	"foodkeeper-backend/internal/utils/mailing"
)

type (
	// UserSource resolves the owner of a food item to an email address.
	// user.UserRepository satisfies it.
	UserSource interface {
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
	}

	mailNotifier struct {
		users UserSource
	}
)

// NewMailNotifier builds an email channel on the SMTP mailer.
func NewMailNotifier(users UserSource) Notifier {
	return &mailNotifier{users: users}
}

func (n *mailNotifier) Notify(ctx context.Context, alert Alert) error {
	user, err := n.users.GetUserByID(ctx, alert.UserID.String())
	if err != nil {
		return err
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>%s</p>",
		user.Name,
		AlertBody(alert),
	)

	return mailing.SendMail(user.Email, AlertTitle(alert), body)
}
