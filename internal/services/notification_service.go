package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"wanderlust/backend/internal/config"
	"wanderlust/backend/internal/email"
	"wanderlust/backend/internal/models"
)

// INotificationService defines the interface for enquiry notification emails.
type INotificationService interface {
	NotifyEnquiry(ctx context.Context, enquiry *models.Enquiry) error
}

// notificationService implements INotificationService.
type notificationService struct {
	cfg    *config.Config
	sender email.Sender
	now    func() time.Time
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(cfg *config.Config, sender email.Sender) INotificationService {
	return &notificationService{cfg: cfg, sender: sender, now: time.Now}
}

// NotifyEnquiry renders and dispatches the traveller confirmation and the
// admin notification for a persisted enquiry. Both emails render from the
// same snapshot and are sent concurrently with no ordering between them; if
// either send fails the whole call fails. When mail credentials are not
// configured, no send is attempted and the call succeeds.
func (s *notificationService) NotifyEnquiry(ctx context.Context, enquiry *models.Enquiry) error {
	if !s.cfg.MailConfigured() {
		log.Printf("Mail credentials not configured, skipping notification emails for enquiry %s", enquiry.ID.Hex())
		return nil
	}

	travellerHTML, err := email.RenderTravellerEmail(enquiry, s.cfg.AppName)
	if err != nil {
		return err
	}
	adminHTML, err := email.RenderAdminEmail(enquiry, s.cfg.AppName, s.now())
	if err != nil {
		return err
	}

	messages := []email.Message{
		{
			FromName: s.cfg.AppName,
			From:     s.cfg.MailUser,
			To:       enquiry.Email,
			Subject:  fmt.Sprintf("We have received your trip enquiry · %s", s.cfg.AppName),
			HTML:     travellerHTML,
		},
		{
			FromName: s.cfg.AppName + " Enquiries",
			From:     s.cfg.MailUser,
			To:       s.cfg.AdminEmail,
			ReplyTo:  enquiry.Email,
			Subject:  fmt.Sprintf("New travel enquiry from %s", enquiry.Name),
			HTML:     adminHTML,
		},
	}

	// Fire both sends together and wait for both. A failed sibling is not
	// cancelled; its result is simply discarded once the first error is kept.
	errCh := make(chan error, len(messages))
	for _, msg := range messages {
		go func(m email.Message) {
			errCh <- s.sender.Send(ctx, m)
		}(msg)
	}

	var firstErr error
	for range messages {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return fmt.Errorf("failed to send enquiry notifications: %w", firstErr)
	}
	return nil
}
