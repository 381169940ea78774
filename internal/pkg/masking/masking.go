// Package masking derives the privacy-masked display form of a contact before
// it has been unlocked. Pure string work; the canonical values stay server-side
// and unlocking is the only path back to them.
package masking

import "strings"

const (
	maskedPhonePlaceholder = "XXXXXXXXXX"
	maskedEmailPlaceholder = "xxxxx@xxxxx.com"
	maskedNamePlaceholder  = "XXXX XXXX"
	maskedEmailDomain      = "xxxxx.com"
)

// Contact carries the canonical values to be masked.
type Contact struct {
	Name  string
	Phone string
	Email string
}

// Masked is the display-safe form of a contact.
type Masked struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Mask returns the masked display form of every field of a contact.
func Mask(c Contact) Masked {
	return Masked{
		Name:  Name(c.Name),
		Phone: Phone(c.Phone),
		Email: Email(c.Email),
	}
}

// Phone keeps the leading 4 digits of the normalized digit string and replaces
// the remainder with a fixed-length placeholder.
func Phone(phone string) string {
	digits := digitsOnly(phone)
	if len(digits) < 4 {
		return maskedPhonePlaceholder
	}
	return digits[:4] + "XXXXXX"
}

// Email keeps the first 2 characters of the local part and replaces the domain
// with a constant placeholder domain.
func Email(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || domain == "" {
		return maskedEmailPlaceholder
	}
	return clip(local, 2) + "XXXX@" + maskedEmailDomain
}

// Name keeps two characters of the first name and one of the last.
func Name(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return maskedNamePlaceholder
	}

	parts := strings.Fields(trimmed)
	if len(parts) == 1 {
		return clip(parts[0], 2) + "XXX"
	}

	first := clip(parts[0], 2) + "XXX"
	last := clip(parts[len(parts)-1], 1) + "XX"
	return first + " " + last
}

// clip keeps at most n runes so multibyte names never split mid-rune.
func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
