// Package whatsapp builds wa.me deep links. It never talks to WhatsApp;
// opening the link is up to the operator.
package whatsapp

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/vedsagar/educrm/core"
)

var (
	ErrInvalidPhone   = errors.New("invalid phone number")
	ErrEmptyMessage   = errors.New("empty message")
	ErrMessageTooLong = errors.New("message too long")
)

type Service struct {
	baseURL     string
	countryCode string
	maxLen      int
}

func NewService(conf *core.Config) *Service {
	svc := &Service{
		baseURL:     conf.WhatsApp.BaseURL,
		countryCode: conf.WhatsApp.DefaultCountryCode,
		maxLen:      conf.WhatsApp.MessageLengthLimit,
	}
	if svc.baseURL == "" {
		svc.baseURL = "https://wa.me"
	}
	if svc.countryCode == "" {
		svc.countryCode = core.DefaultCountryCode
	}
	return svc
}

// BuildLink returns a click-to-chat URL for the phone number and message.
//
// The phone is reduced to digits; a 10-digit number gets the country code
// prefixed, a 12-digit number already carrying the country code is used
// as-is, and anything else is rejected. Spaces in the message encode as
// %20 so the link pastes cleanly everywhere.
func (svc *Service) BuildLink(phone, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}
	if svc.maxLen > 0 && len([]rune(message)) > svc.maxLen {
		return "", ErrMessageTooLong
	}

	digits := core.StripPhone(phone)
	switch {
	case len(digits) == 10:
		digits = svc.countryCode + digits
	case len(digits) == 12 && strings.HasPrefix(digits, svc.countryCode):
		// already fully qualified
	default:
		return "", errors.Wrapf(ErrInvalidPhone, "%q", phone)
	}

	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return svc.baseURL + "/" + digits + "?text=" + encoded, nil
}
