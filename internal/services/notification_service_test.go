package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wanderlust/backend/internal/config"
	"wanderlust/backend/internal/email"
	"wanderlust/backend/internal/models"
)

// MockEmailSender mocks email.Sender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, msg email.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func mailConfig() *config.Config {
	return &config.Config{
		AppName:    "Wanderlust India",
		MailUser:   "desk@example.com",
		AdminEmail: "admin@example.com",
	}
}

func testEnquiry() *models.Enquiry {
	return &models.Enquiry{
		Name:        "Asha",
		Email:       "asha@example.com",
		Destination: "Goa",
		Budget:      "50000",
	}
}

func TestNotifyEnquiry_SkipsWhenMailNotConfigured(t *testing.T) {
	sender := new(MockEmailSender)
	svc := &notificationService{
		cfg:    &config.Config{AppName: "Wanderlust India"},
		sender: sender,
		now:    time.Now,
	}

	err := svc.NotifyEnquiry(context.Background(), testEnquiry())

	assert.NoError(t, err)
	sender.AssertNotCalled(t, "Send")
}

func TestNotifyEnquiry_SendsTravellerAndAdminEmails(t *testing.T) {
	sender := new(MockEmailSender)
	svc := &notificationService{
		cfg:    mailConfig(),
		sender: sender,
		now:    func() time.Time { return time.Date(2026, time.January, 15, 10, 30, 0, 0, time.UTC) },
	}

	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg email.Message) bool {
		return msg.To == "asha@example.com" &&
			msg.Subject == "We have received your trip enquiry · Wanderlust India" &&
			msg.ReplyTo == ""
	})).Return(nil).Once()
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg email.Message) bool {
		return msg.To == "admin@example.com" &&
			msg.Subject == "New travel enquiry from Asha" &&
			msg.ReplyTo == "asha@example.com"
	})).Return(nil).Once()

	err := svc.NotifyEnquiry(context.Background(), testEnquiry())

	assert.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestNotifyEnquiry_FailFastJoin(t *testing.T) {
	sender := new(MockEmailSender)
	svc := &notificationService{cfg: mailConfig(), sender: sender, now: time.Now}

	// The traveller send fails while the admin send succeeds; the whole
	// operation must fail, and both sends must have been attempted.
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg email.Message) bool {
		return msg.To == "asha@example.com"
	})).Return(errors.New("smtp auth rejected")).Once()
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg email.Message) bool {
		return msg.To == "admin@example.com"
	})).Return(nil).Once()

	err := svc.NotifyEnquiry(context.Background(), testEnquiry())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "smtp auth rejected")
	sender.AssertNumberOfCalls(t, "Send", 2)
}

func TestNotifyEnquiry_BothSendsFail(t *testing.T) {
	sender := new(MockEmailSender)
	svc := &notificationService{cfg: mailConfig(), sender: sender, now: time.Now}

	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("connection refused")).Twice()

	err := svc.NotifyEnquiry(context.Background(), testEnquiry())

	assert.Error(t, err)
	sender.AssertNumberOfCalls(t, "Send", 2)
}
