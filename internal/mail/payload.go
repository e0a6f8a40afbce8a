package mail

import (
	"fmt"
	"strings"
	"time"

	"github.com/codeCrafterX-33/discoverCrismyla/internal/cart"
	"github.com/google/uuid"
)

// Customer carries the checkout form's contact and shipping fields.
type Customer struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Apartment  string `json:"apartment,omitempty"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// FullName joins first and last name, falling back to the single Name field.
func (c Customer) FullName() string {
	name := strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
	if name == "" {
		return strings.TrimSpace(c.Name)
	}
	return name
}

// FullAddress composes the shipping address into one line, skipping empty
// parts.
func (c Customer) FullAddress() string {
	parts := []string{c.Address, c.Apartment, c.City, c.Province, c.PostalCode, c.Country}
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, ", ")
}

// Lead is a community-signup contact capture.
type Lead struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp"`
}

// OrderPayload is the submission snapshot for one checkout attempt: customer
// form, line items and derived totals frozen at submission time. It is built
// once per attempt and never mutated afterwards.
type OrderPayload struct {
	Reference string      `json:"reference"`
	Customer  Customer    `json:"customer"`
	Items     []cart.Item `json:"items"`
	Totals    cart.Totals `json:"totals"`
}

// NewOrderPayload freezes the cart into an order payload with a fresh
// reference.
func NewOrderPayload(customer Customer, items []cart.Item, totals cart.Totals) OrderPayload {
	frozen := make([]cart.Item, len(items))
	copy(frozen, items)
	return OrderPayload{
		Reference: uuid.NewString(),
		Customer:  customer,
		Items:     frozen,
		Totals:    totals,
	}
}

func formatAmount(v int64) string {
	return fmt.Sprintf("$%d", v)
}

// orderLines renders the line-items block, one "<name> x <qty> = $<total>"
// line per item in cart order.
func orderLines(items []cart.Item) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("%s x %d = %s", it.Name, it.Quantity, formatAmount(it.LineTotal())))
	}
	return strings.Join(lines, "\n")
}

func newsletterParams(email, toEmail string) map[string]string {
	return map[string]string{
		"to_email":         toEmail,
		"subscriber_email": email,
		"subject":          "New newsletter subscriber",
	}
}

func leadParams(l Lead, toEmail string, now time.Time) map[string]string {
	message := fmt.Sprintf(`New Lead - Community Member Signup

Contact Information:
Name: %s
Email: %s
WhatsApp: %s

This customer has joined the Crismyla community to receive exclusive coupons, discounts, and product updates. Great opportunity for marketing campaigns and promotional offers.`,
		l.Name, l.Email, l.WhatsApp)

	return map[string]string{
		"customer_name":     l.Name,
		"name":              l.Name,
		"time":              now.Format("Monday, January 2, 2006 03:04 PM MST"),
		"message":           message,
		"to_email":          toEmail,
		"reply_to":          l.Email,
		"customer_email":    l.Email,
		"customer_whatsapp": l.WhatsApp,
		"subject":           fmt.Sprintf("New Member: %s signed up for coupons & discounts", l.Name),
	}
}

func orderParams(p OrderPayload, toEmail string) map[string]string {
	province := strings.TrimSpace(p.Customer.Province)
	if province == "" {
		province = "Not specified"
	}
	country := strings.TrimSpace(p.Customer.Country)
	if country == "" {
		country = "Canada"
	}

	return map[string]string{
		"to_email":              toEmail,
		"order_reference":       p.Reference,
		"customer_name":         p.Customer.FullName(),
		"customer_first_name":   p.Customer.FirstName,
		"customer_last_name":    p.Customer.LastName,
		"customer_email":        p.Customer.Email,
		"customer_phone":        p.Customer.Phone,
		"customer_address":      p.Customer.Address,
		"customer_apartment":    p.Customer.Apartment,
		"customer_city":         p.Customer.City,
		"customer_province":     province,
		"customer_postal_code":  p.Customer.PostalCode,
		"customer_country":      country,
		"customer_full_address": p.Customer.FullAddress(),
		"order_subtotal":        formatAmount(p.Totals.Subtotal),
		"order_tax":             formatAmount(p.Totals.Tax),
		"order_shipping":        formatAmount(p.Totals.Shipping),
		"order_total":           formatAmount(p.Totals.Total),
		"order_province":        province,
		"order_lines":           orderLines(p.Items),
	}
}
