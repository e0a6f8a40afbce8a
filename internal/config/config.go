// Package config resolves the service configuration from the environment
// once at startup. Mail channel credentials are resolved here rather than
// read ad hoc inside handlers; a channel left unconfigured surfaces as a
// configuration error at submission time, so the storefront still boots and
// serves the catalog.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/codeCrafterX-33/discoverCrismyla/internal/mail"
)

type Config struct {
	Port            string
	CartFile        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// CORS
	CORSAllowOrigins []string

	Mail mail.Config
}

func Load() Config {
	return Config{
		Port:     getenv("PORT", "3001"),
		CartFile: getenv("CART_FILE", "cart.json"),

		ReadTimeout: parseDuration(getenv("READ_TIMEOUT", "5s"), 5*time.Second),
		// Long enough to cover an order submission's full retry budget.
		WriteTimeout:    parseDuration(getenv("WRITE_TIMEOUT", "30s"), 30*time.Second),
		ShutdownTimeout: parseDuration(getenv("SHUTDOWN_TIMEOUT", "5s"), 5*time.Second),

		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),

		Mail: loadMail(),
	}
}

func loadMail() mail.Config {
	serviceID := os.Getenv("EMAILJS_SERVICE_ID")
	publicKey := os.Getenv("EMAILJS_PUBLIC_KEY")
	privateKey := os.Getenv("EMAILJS_PRIVATE_KEY")
	newsletterTo := os.Getenv("NEWSLETTER_TO_EMAIL")

	return mail.Config{
		Newsletter: mail.ChannelConfig{
			ServiceID:  serviceID,
			TemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
			ToEmail:    newsletterTo,
			PublicKey:  publicKey,
			PrivateKey: privateKey,
		},
		// The lead channel may run on a dedicated EmailJS account; each
		// value falls back to the main account when the dedicated one is
		// not set.
		Lead: mail.ChannelConfig{
			ServiceID:  firstenv("CUSTOMER_INFO_EMAILJS_SERVICE_ID", "EMAILJS_SERVICE_ID"),
			TemplateID: firstenv("CUSTOMER_INFO_EMAILJS_TEMPLATE_ID", "EMAILJS_CUSTOMER_INFO_TEMPLATE_ID"),
			ToEmail:    os.Getenv("CUSTOMER_INFO_TO_EMAIL"),
			PublicKey:  firstenv("CUSTOMER_INFO_EMAILJS_PUBLIC_KEY", "EMAILJS_PUBLIC_KEY"),
			PrivateKey: firstenv("CUSTOMER_INFO_EMAILJS_PRIVATE_KEY", "EMAILJS_PRIVATE_KEY"),
		},
		Order: mail.ChannelConfig{
			ServiceID:  serviceID,
			TemplateID: os.Getenv("EMAILJS_ORDER_TEMPLATE_ID"),
			ToEmail:    newsletterTo,
			PublicKey:  publicKey,
			PrivateKey: privateKey,
		},
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func firstenv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
