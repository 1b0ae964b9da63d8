package smsgateway

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Client sends booking confirmations and reminders through Twilio.
//
// When credentials are missing the client runs in simulated mode: messages
// are logged instead of sent and every send reports success. That keeps
// development and CI environments working without a Twilio account, the
// same way the desktop tooling behaved.
type Client struct {
	api          *twilio.RestClient
	fromNumber   string
	countryCode  string
	businessName string
	enabled      bool
	log          Logger
	metrics      MetricsObserver
}

// NewClient creates the SMS gateway. accountSID and authToken come from
// the environment; fromNumber, countryCode and businessName from config.
func NewClient(accountSID, authToken, fromNumber, countryCode, businessName string, log Logger, metrics MetricsObserver) *Client {
	c := &Client{
		fromNumber:   fromNumber,
		countryCode:  countryCode,
		businessName: businessName,
		log:          log,
		metrics:      metrics,
	}

	if accountSID != "" && authToken != "" && fromNumber != "" {
		c.api = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		})
		c.enabled = true
	} else {
		log.Warn("SMS gateway not configured, messages will be logged only")
	}

	return c
}

// SendBookingConfirmation sends the confirmation SMS for a committed
// booking. Callers treat this as best-effort: an error here never unwinds
// the booking.
func (c *Client) SendBookingConfirmation(ctx context.Context, conf Confirmation) error {
	body := confirmationMessage(c.businessName, conf)
	err := c.send(ctx, conf.Phone, body)
	if c.metrics != nil {
		c.metrics.ObserveSMS("confirmation", err)
	}
	return err
}

// SendBookingReminder sends the next-day reminder SMS for a booking.
func (c *Client) SendBookingReminder(ctx context.Context, rem Reminder) error {
	body := reminderMessage(c.businessName, rem)
	err := c.send(ctx, rem.Phone, body)
	if c.metrics != nil {
		c.metrics.ObserveSMS("reminder", err)
	}
	return err
}

func (c *Client) send(ctx context.Context, phone, body string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	to, err := formatNumber(phone, c.countryCode)
	if err != nil {
		return err
	}

	if !c.enabled {
		c.log.Info("SMS simulation: to=%s body=%q", to, body)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.fromNumber)
	params.SetBody(body)

	resp, err := c.api.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	if resp.Sid != nil {
		c.log.Info("SMS sent: to=%s sid=%s", to, *resp.Sid)
	} else {
		c.log.Info("SMS sent: to=%s (no sid returned)", to)
	}
	return nil
}
