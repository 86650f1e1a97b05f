// Package validation checks user supplied identifiers.
package validation

import (
	"fmt"
	"net"
	"regexp"
	"strconv"
)

// ValidHostPort checks a host:port address with a port in 1..65535.
func ValidHostPort(hostAndPort string) error {
	_, port, err := net.SplitHostPort(hostAndPort)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("invalid port %q", port)
	}
	return nil
}

// SplitHostPort splits a host[:port] address, using defaultPort if
// the address has none.
func SplitHostPort(address string, defaultPort int) (string, int, error) {
	host, portStr, err := net.SplitHostPort(address)
	if err != nil {
		// no port
		return address, defaultPort, nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return "", 0, fmt.Errorf("invalid port in address %q", address)
	}
	return host, port, nil
}

const (
	UsernameMaxLength = 16
	UsernameErrMsg    = "must be 1-16 characters of letters, digits and '_'"
)

var usernameRegexp = regexp.MustCompile(`^[A-Za-z0-9_]{1,16}$`)

// ValidUsername reports whether str is accepted as offline mode player name.
func ValidUsername(str string) bool {
	return usernameRegexp.MatchString(str)
}
