package services

import (
	"context"
	"fmt"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ContactNotifier is told about every persisted contact message.
type ContactNotifier interface {
	Name() string
	NotifyContact(ctx context.Context, message models.ContactMessage) error
}

// Notifiers fans a message out to every configured channel.
type Notifiers []ContactNotifier

// NewNotifiers builds a notifier for each channel enabled in settings.
// Channels without configuration are skipped; an empty result is valid.
func NewNotifiers(settings config.Settings) (Notifiers, error) {
	var notifiers Notifiers

	if settings.Email.Enabled() {
		sender, err := NewEmailSender(settings.Email)
		if err != nil {
			return nil, fmt.Errorf("email notifier: %w", err)
		}
		notifiers = append(notifiers, sender)
	}

	if settings.SMS.Enabled() {
		sender, err := NewSMSSender(settings.SMS)
		if err != nil {
			return nil, fmt.Errorf("sms notifier: %w", err)
		}
		notifiers = append(notifiers, sender)
	}

	names := make([]string, 0, len(notifiers))
	for _, n := range notifiers {
		names = append(names, n.Name())
	}
	log.Info().Strs("channels", names).Msg("Contact notifications configured")

	return notifiers, nil
}

// NotifyContact runs every notifier concurrently. A failing channel does not
// stop the others; all failures are reported together.
func (n Notifiers) NotifyContact(ctx context.Context, message models.ContactMessage) error {
	if len(n) == 0 {
		return nil
	}

	// One slot per channel; the group only keeps the first error.
	failures := make([]error, len(n))
	var g errgroup.Group

	for i, notifier := range n {
		i, notifier := i, notifier
		g.Go(func() error {
			err := notifier.NotifyContact(ctx, message)
			if err != nil {
				log.Error().Err(err).
					Str("channel", notifier.Name()).
					Str("kind", errs.Kind(err)).
					Int64("contactMessageId", message.ID).
					Msg("Failed to send contact notification")
				failures[i] = fmt.Errorf("%s: %w", notifier.Name(), err)
			}
			return failures[i]
		})
	}
	if err := g.Wait(); err == nil {
		return nil
	}

	var failed []string
	for _, err := range failures {
		if err != nil {
			failed = append(failed, err.Error())
		}
	}
	return errs.NewPartialFailureError("contact notification", failed)
}
