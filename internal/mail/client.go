package mail

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// ChannelConfig is the deployment configuration for one logical channel.
// Every field is required; Validate is checked before any network call so a
// misconfigured channel short-circuits with a ConfigurationError.
type ChannelConfig struct {
	ServiceID  string
	TemplateID string
	ToEmail    string
	PublicKey  string
	PrivateKey string
}

func (c ChannelConfig) validate(channel string) error {
	var missing []string
	if c.ServiceID == "" {
		missing = append(missing, "service id")
	}
	if c.TemplateID == "" {
		missing = append(missing, "template id")
	}
	if c.ToEmail == "" {
		missing = append(missing, "destination email")
	}
	if c.PublicKey == "" {
		missing = append(missing, "public key")
	}
	if c.PrivateKey == "" {
		missing = append(missing, "private key")
	}
	if len(missing) > 0 {
		return &ConfigurationError{Channel: channel, Missing: missing}
	}
	return nil
}

// Config holds the three channels the storefront submits to.
type Config struct {
	Newsletter ChannelConfig
	Lead       ChannelConfig
	Order      ChannelConfig
}

// Client validates submissions and dispatches them to the relay with
// sequential retry. At most one submission per channel may be in flight at a
// time; a concurrent attempt fails fast with ErrSubmissionInFlight.
//
// The exported knobs may be adjusted after NewClient and before first use.
type Client struct {
	// MaxRetries caps the attempts per submission (default 3).
	MaxRetries int
	// NewsletterDelay, LeadDelay and OrderDelay seed the exponential
	// backoff for their channel.
	NewsletterDelay time.Duration
	LeadDelay       time.Duration
	OrderDelay      time.Duration
	// Sleep and Now are injectable for tests.
	Sleep func(time.Duration)
	Now   func() time.Time

	gateway Gateway
	cfg     Config
	logger  *log.Logger

	newsletterMu sync.Mutex
	leadMu       sync.Mutex
	orderMu      sync.Mutex
}

func NewClient(gateway Gateway, cfg Config, logger *log.Logger) *Client {
	return &Client{
		MaxRetries:      3,
		NewsletterDelay: time.Second,
		LeadDelay:       time.Second,
		OrderDelay:      1500 * time.Millisecond,
		Sleep:           time.Sleep,
		Now:             time.Now,
		gateway:         gateway,
		cfg:             cfg,
		logger:          logger,
	}
}

// SendNewsletter submits a newsletter signup.
func (c *Client) SendNewsletter(ctx context.Context, email string) error {
	if err := validateNewsletter(email); err != nil {
		return err
	}
	if err := c.cfg.Newsletter.validate("newsletter"); err != nil {
		return err
	}

	if !c.newsletterMu.TryLock() {
		return ErrSubmissionInFlight
	}
	defer c.newsletterMu.Unlock()

	params := newsletterParams(email, c.cfg.Newsletter.ToEmail)
	return c.dispatch(ctx, "newsletter", c.cfg.Newsletter, params, c.NewsletterDelay)
}

// SendLead submits a community-signup lead capture.
func (c *Client) SendLead(ctx context.Context, lead Lead) error {
	if err := lead.validate(); err != nil {
		return err
	}
	if err := c.cfg.Lead.validate("customer-info"); err != nil {
		return err
	}

	if !c.leadMu.TryLock() {
		return ErrSubmissionInFlight
	}
	defer c.leadMu.Unlock()

	params := leadParams(lead, c.cfg.Lead.ToEmail, c.Now())
	return c.dispatch(ctx, "customer-info", c.cfg.Lead, params, c.LeadDelay)
}

// SendOrder submits an order notification. Callers must clear the cart only
// after this returns nil; a failed submission leaves the cart intact for a
// user-initiated retry.
func (c *Client) SendOrder(ctx context.Context, payload OrderPayload) error {
	if err := payload.validate(); err != nil {
		return err
	}
	if err := c.cfg.Order.validate("order"); err != nil {
		return err
	}

	if !c.orderMu.TryLock() {
		return ErrSubmissionInFlight
	}
	defer c.orderMu.Unlock()

	params := orderParams(payload, c.cfg.Order.ToEmail)
	return c.dispatch(ctx, "order", c.cfg.Order, params, c.OrderDelay)
}

// dispatch runs the retry loop for one submission. Only errors classified as
// transient are retried; the last error propagates once the budget is spent.
func (c *Client) dispatch(ctx context.Context, channel string, cfg ChannelConfig, params map[string]string, initialDelay time.Duration) error {
	b := backoff{
		maxRetries:   c.MaxRetries,
		initialDelay: initialDelay,
		sleep:        c.Sleep,
		logger:       c.logger,
	}

	resp, err := b.do(ctx, channel, func(ctx context.Context) (*Response, error) {
		resp, err := c.gateway.Send(ctx, Request{
			ServiceID:  cfg.ServiceID,
			TemplateID: cfg.TemplateID,
			Params:     params,
			PublicKey:  cfg.PublicKey,
			PrivateKey: cfg.PrivateKey,
		})
		if err != nil {
			return nil, classifyDelivery(err)
		}
		if resp.Status != StatusOK {
			return nil, &DeliveryError{
				Status:  resp.Status,
				Text:    resp.Text,
				Message: fmt.Sprintf("mail relay rejected the request (status %d: %s)", resp.Status, resp.Text),
			}
		}
		return resp, nil
	})
	if err != nil {
		c.logger.Printf("%s: send failed: %v", channel, err)
		return err
	}

	c.logger.Printf("%s: email sent (status %d)", channel, resp.Status)
	return nil
}
