package mail

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Phone numbers tolerate spaces, dashes and parentheses; after stripping them
// the digits must form either an international number (optional +, no leading
// zero) or a plain 10-15 digit string.
var (
	phoneCleaner = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	intlPhoneRe  = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	localPhoneRe = regexp.MustCompile(`^[0-9]{10,15}$`)
)

func validEmail(email string) bool {
	return emailRe.MatchString(email)
}

func validPhone(phone string) bool {
	cleaned := phoneCleaner.Replace(phone)
	return intlPhoneRe.MatchString(cleaned) || localPhoneRe.MatchString(cleaned)
}

func validateNewsletter(email string) error {
	if !validEmail(email) {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	return nil
}

func (l Lead) validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if !validEmail(l.Email) {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if !validPhone(l.WhatsApp) {
		return &ValidationError{Field: "whatsapp", Reason: "must be a valid phone number"}
	}
	return nil
}

func (p OrderPayload) validate() error {
	if p.Customer.FullName() == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if !validEmail(p.Customer.Email) {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if strings.TrimSpace(p.Customer.Address) == "" {
		return &ValidationError{Field: "address", Reason: "must not be empty"}
	}
	if len(p.Items) == 0 {
		return &ValidationError{Field: "items", Reason: "cart is empty"}
	}
	for _, it := range p.Items {
		if it.Quantity < 1 {
			return &ValidationError{Field: "items", Reason: "every line item needs a quantity of at least 1"}
		}
	}
	return nil
}
