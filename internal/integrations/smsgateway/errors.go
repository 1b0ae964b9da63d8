package smsgateway

import "errors"

var (
	// ErrSendFailed is returned when the SMS provider rejects a message
	ErrSendFailed = errors.New("smsgateway: failed to send message")

	// ErrInvalidRecipient is returned for numbers that cannot be normalized
	ErrInvalidRecipient = errors.New("smsgateway: invalid recipient number")
)
