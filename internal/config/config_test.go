package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CART_FILE", "")

	cfg := Load()

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "cart.json", cfg.CartFile)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
}

func TestLoad_MailChannels(t *testing.T) {
	t.Setenv("EMAILJS_SERVICE_ID", "svc_main")
	t.Setenv("EMAILJS_PUBLIC_KEY", "pub_main")
	t.Setenv("EMAILJS_PRIVATE_KEY", "priv_main")
	t.Setenv("EMAILJS_TEMPLATE_ID", "tpl_newsletter")
	t.Setenv("EMAILJS_ORDER_TEMPLATE_ID", "tpl_order")
	t.Setenv("NEWSLETTER_TO_EMAIL", "owner@example.com")

	cfg := Load()

	assert.Equal(t, "svc_main", cfg.Mail.Newsletter.ServiceID)
	assert.Equal(t, "tpl_newsletter", cfg.Mail.Newsletter.TemplateID)
	assert.Equal(t, "owner@example.com", cfg.Mail.Newsletter.ToEmail)
	assert.Equal(t, "tpl_order", cfg.Mail.Order.TemplateID)
	assert.Equal(t, "owner@example.com", cfg.Mail.Order.ToEmail)
}

func TestLoad_LeadChannelFallsBackToMainAccount(t *testing.T) {
	t.Setenv("EMAILJS_SERVICE_ID", "svc_main")
	t.Setenv("EMAILJS_PUBLIC_KEY", "pub_main")
	t.Setenv("EMAILJS_PRIVATE_KEY", "priv_main")
	t.Setenv("EMAILJS_CUSTOMER_INFO_TEMPLATE_ID", "tpl_lead_main")
	t.Setenv("CUSTOMER_INFO_TO_EMAIL", "leads@example.com")

	cfg := Load()

	assert.Equal(t, "svc_main", cfg.Mail.Lead.ServiceID)
	assert.Equal(t, "tpl_lead_main", cfg.Mail.Lead.TemplateID)
	assert.Equal(t, "pub_main", cfg.Mail.Lead.PublicKey)
	assert.Equal(t, "priv_main", cfg.Mail.Lead.PrivateKey)
	assert.Equal(t, "leads@example.com", cfg.Mail.Lead.ToEmail)
}

func TestLoad_LeadChannelDedicatedAccountWins(t *testing.T) {
	t.Setenv("EMAILJS_SERVICE_ID", "svc_main")
	t.Setenv("EMAILJS_PRIVATE_KEY", "priv_main")
	t.Setenv("CUSTOMER_INFO_EMAILJS_SERVICE_ID", "svc_lead")
	t.Setenv("CUSTOMER_INFO_EMAILJS_TEMPLATE_ID", "tpl_lead")
	t.Setenv("CUSTOMER_INFO_EMAILJS_PRIVATE_KEY", "priv_lead")

	cfg := Load()

	assert.Equal(t, "svc_lead", cfg.Mail.Lead.ServiceID)
	assert.Equal(t, "tpl_lead", cfg.Mail.Lead.TemplateID)
	assert.Equal(t, "priv_lead", cfg.Mail.Lead.PrivateKey)
}
