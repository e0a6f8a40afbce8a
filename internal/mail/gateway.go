// Package mail delivers storefront notifications (newsletter signups, lead
// captures, order confirmations) through the EmailJS transactional relay. It
// owns payload validation, per-channel configuration checks, transient-error
// classification and retry with exponential backoff.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// StatusOK is the relay's designated success acknowledgment.
const StatusOK = 200

const defaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// Request is one send through the relay: a template on a service, filled
// with string parameters, authorized by the account key pair.
type Request struct {
	ServiceID  string
	TemplateID string
	Params     map[string]string
	PublicKey  string
	PrivateKey string
}

// Response is the relay's acknowledgment. Status carries the HTTP status;
// anything other than StatusOK is a rejected send.
type Response struct {
	Status int
	Text   string
}

// Gateway is the outbound boundary to the mail relay. Send returns an error
// only for transport failures; a rejected send comes back as a Response with
// a non-OK status.
type Gateway interface {
	Send(ctx context.Context, req Request) (*Response, error)
}

// EmailJS is the production Gateway, posting to the EmailJS REST API.
type EmailJS struct {
	Endpoint   string
	HTTPClient *http.Client
}

func NewEmailJS() *EmailJS {
	return &EmailJS{
		Endpoint:   defaultEndpoint,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type emailJSBody struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken"`
	TemplateParams map[string]string `json:"template_params"`
}

func (g *EmailJS) Send(ctx context.Context, req Request) (*Response, error) {
	raw, err := json.Marshal(emailJSBody{
		ServiceID:      req.ServiceID,
		TemplateID:     req.TemplateID,
		UserID:         req.PublicKey,
		AccessToken:    req.PrivateKey,
		TemplateParams: req.Params,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal emailjs request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.Endpoint, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("build emailjs request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("emailjs send: %w", err)
	}
	defer resp.Body.Close()

	// The relay answers with a short plain-text body ("OK" on success).
	text, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return nil, fmt.Errorf("read emailjs response: %w", err)
	}

	return &Response{
		Status: resp.StatusCode,
		Text:   strings.TrimSpace(string(text)),
	}, nil
}
