package validators

import (
	"net"
	"net/mail"
	"strings"
)

// EmailChecker decides whether an address may be stored on an actor.
type EmailChecker func(email string) bool

// IsEmailFormatValid accepts a bare address, without display name.
func IsEmailFormatValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email && strings.Contains(email[strings.LastIndex(email, "@")+1:], ".")
}

// IsEmailDomainValid also requires the domain to resolve (MX, then A/AAAA).
func IsEmailDomainValid(email string) bool {
	if !IsEmailFormatValid(email) {
		return false
	}

	domain := email[strings.LastIndex(email, "@")+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
