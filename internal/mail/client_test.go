package mail

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/codeCrafterX-33/discoverCrismyla/internal/cart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGateway struct {
	sendFunc func(ctx context.Context, req Request) (*Response, error)
	calls    int
	requests []Request
}

func (g *stubGateway) Send(ctx context.Context, req Request) (*Response, error) {
	g.calls++
	g.requests = append(g.requests, req)
	if g.sendFunc != nil {
		return g.sendFunc(ctx, req)
	}
	return &Response{Status: 200, Text: "OK"}, nil
}

func testChannel() ChannelConfig {
	return ChannelConfig{
		ServiceID:  "service_1",
		TemplateID: "template_1",
		ToEmail:    "owner@example.com",
		PublicKey:  "pub",
		PrivateKey: "priv",
	}
}

func testConfig() Config {
	return Config{
		Newsletter: testChannel(),
		Lead:       testChannel(),
		Order:      testChannel(),
	}
}

// newTestClient wires a client with an instant fake sleep that records the
// backoff delays it was asked for.
func newTestClient(gw Gateway, cfg Config) (*Client, *[]time.Duration) {
	c := NewClient(gw, cfg, log.New(io.Discard, "", 0))
	delays := &[]time.Duration{}
	c.Sleep = func(d time.Duration) { *delays = append(*delays, d) }
	c.Now = func() time.Time { return time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC) }
	return c, delays
}

func testOrderPayload() OrderPayload {
	items := []cart.Item{{ID: "a", Name: "Oil", UnitPrice: 30, Quantity: 2}}
	return NewOrderPayload(Customer{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "416-555-0100",
		Address:   "1 King St W",
		City:      "Toronto",
		Province:  "ON",
	}, items, cart.Totals{Subtotal: 60, Tax: 8, Shipping: 20, Total: 88})
}

func TestSendNewsletter_Success(t *testing.T) {
	gw := &stubGateway{}
	c, _ := newTestClient(gw, testConfig())

	require.NoError(t, c.SendNewsletter(context.Background(), "sub@example.com"))

	require.Equal(t, 1, gw.calls)
	req := gw.requests[0]
	assert.Equal(t, "service_1", req.ServiceID)
	assert.Equal(t, "sub@example.com", req.Params["subscriber_email"])
	assert.Equal(t, "owner@example.com", req.Params["to_email"])
	assert.Equal(t, "New newsletter subscriber", req.Params["subject"])
}

func TestSendNewsletter_InvalidEmailSkipsNetwork(t *testing.T) {
	gw := &stubGateway{}
	c, _ := newTestClient(gw, testConfig())

	err := c.SendNewsletter(context.Background(), "not-an-email")

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)
	assert.Zero(t, gw.calls)
	assert.False(t, Retryable(err))
}

func TestSendNewsletter_MissingConfigSkipsNetwork(t *testing.T) {
	cfg := testConfig()
	cfg.Newsletter.PrivateKey = ""
	cfg.Newsletter.TemplateID = ""
	gw := &stubGateway{}
	c, _ := newTestClient(gw, cfg)

	err := c.SendNewsletter(context.Background(), "sub@example.com")

	var ce *ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "newsletter", ce.Channel)
	assert.Equal(t, []string{"template id", "private key"}, ce.Missing)
	assert.Zero(t, gw.calls)
}

func TestSendOrder_RetriesTransientThenSucceeds(t *testing.T) {
	attempts := 0
	gw := &stubGateway{sendFunc: func(ctx context.Context, req Request) (*Response, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("request timed out (ETIMEDOUT)")
		}
		return &Response{Status: 200, Text: "OK"}, nil
	}}
	c, delays := newTestClient(gw, testConfig())

	err := c.SendOrder(context.Background(), testOrderPayload())

	require.NoError(t, err)
	assert.Equal(t, 3, gw.calls)
	assert.Equal(t, []time.Duration{1500 * time.Millisecond, 3000 * time.Millisecond}, *delays)
}

func TestSendOrder_TransientBudgetExhausted(t *testing.T) {
	gw := &stubGateway{sendFunc: func(ctx context.Context, req Request) (*Response, error) {
		return nil, errors.New("read tcp: connection reset by peer")
	}}
	c, delays := newTestClient(gw, testConfig())

	err := c.SendOrder(context.Background(), testOrderPayload())

	require.Error(t, err)
	assert.Equal(t, 3, gw.calls)
	assert.Len(t, *delays, 2) // no sleep after the final attempt
	assert.True(t, Retryable(err))
	assert.Equal(t, "Network connection error. Please check your internet connection and try again.", err.Error())
}

func TestSendOrder_PermanentErrorNotRetried(t *testing.T) {
	gw := &stubGateway{sendFunc: func(ctx context.Context, req Request) (*Response, error) {
		return nil, errors.New("template is malformed")
	}}
	c, delays := newTestClient(gw, testConfig())

	err := c.SendOrder(context.Background(), testOrderPayload())

	require.Error(t, err)
	assert.Equal(t, 1, gw.calls)
	assert.Empty(t, *delays)
	assert.False(t, Retryable(err))
}

func TestSendOrder_RejectedStatusNotRetried(t *testing.T) {
	gw := &stubGateway{sendFunc: func(ctx context.Context, req Request) (*Response, error) {
		return &Response{Status: 403, Text: "API calls are disabled"}, nil
	}}
	c, _ := newTestClient(gw, testConfig())

	err := c.SendOrder(context.Background(), testOrderPayload())

	var de *DeliveryError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 403, de.Status)
	assert.False(t, de.Transient)
	assert.Equal(t, 1, gw.calls)
}

func TestSendOrder_CustomRetryKnobs(t *testing.T) {
	gw := &stubGateway{sendFunc: func(ctx context.Context, req Request) (*Response, error) {
		return nil, errors.New("ETIMEDOUT")
	}}
	c, delays := newTestClient(gw, testConfig())
	c.MaxRetries = 2
	c.OrderDelay = 100 * time.Millisecond

	err := c.SendOrder(context.Background(), testOrderPayload())

	require.Error(t, err)
	assert.Equal(t, 2, gw.calls)
	assert.Equal(t, []time.Duration{100 * time.Millisecond}, *delays)
}

func TestSendOrder_ZeroQuantityItemRejected(t *testing.T) {
	gw := &stubGateway{}
	c, _ := newTestClient(gw, testConfig())

	payload := testOrderPayload()
	payload.Items[0].Quantity = 0

	err := c.SendOrder(context.Background(), payload)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "items", ve.Field)
	assert.Zero(t, gw.calls)
}

func TestSendOrder_SecondSubmissionWhileInFlight(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	gw := &stubGateway{sendFunc: func(ctx context.Context, req Request) (*Response, error) {
		close(entered)
		<-release
		return &Response{Status: 200, Text: "OK"}, nil
	}}
	c, _ := newTestClient(gw, testConfig())

	done := make(chan error, 1)
	go func() { done <- c.SendOrder(context.Background(), testOrderPayload()) }()
	<-entered

	err := c.SendOrder(context.Background(), testOrderPayload())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, gw.calls)
}

func TestSendLead_ParamsAndSubject(t *testing.T) {
	gw := &stubGateway{}
	c, _ := newTestClient(gw, testConfig())

	lead := Lead{Name: "Grace Hopper", Email: "grace@example.com", WhatsApp: "+1 (416) 555-0199"}
	require.NoError(t, c.SendLead(context.Background(), lead))

	require.Equal(t, 1, gw.calls)
	params := gw.requests[0].Params
	assert.Equal(t, "Grace Hopper", params["customer_name"])
	assert.Equal(t, "grace@example.com", params["reply_to"])
	assert.Equal(t, "New Member: Grace Hopper signed up for coupons & discounts", params["subject"])
	assert.Contains(t, params["message"], "Name: Grace Hopper")
	assert.Contains(t, params["message"], "WhatsApp: +1 (416) 555-0199")
	assert.Equal(t, "Monday, June 2, 2025 02:30 PM UTC", params["time"])
}

func TestSendLead_InvalidPhone(t *testing.T) {
	gw := &stubGateway{}
	c, _ := newTestClient(gw, testConfig())

	err := c.SendLead(context.Background(), Lead{Name: "G", Email: "g@example.com", WhatsApp: "not a number"})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "whatsapp", ve.Field)
	assert.Zero(t, gw.calls)
}

func TestSendLead_PhoneShapes(t *testing.T) {
	valid := []string{"+14165550199", "416 555 0199 00", "(416) 555-0199", "4165550199"}
	invalid := []string{"", "abc", "+0123456789", "0"}

	for _, phone := range valid {
		assert.True(t, validPhone(phone), "expected valid: %q", phone)
	}
	for _, phone := range invalid {
		assert.False(t, validPhone(phone), "expected invalid: %q", phone)
	}
}
