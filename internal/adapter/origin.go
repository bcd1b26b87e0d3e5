package adapter

import (
	"net"
	"strings"
)

// localOrigin is the development API server address used when the client
// runs on a loopback host and no explicit base URL is configured.
const localOrigin = "http://localhost:5000"

// resolveOrigin picks the API origin for a host the client considers itself
// running on. Loopback hosts (and an empty host) map to the development
// origin; anything else is assumed to serve the API over HTTPS on the same
// host.
func resolveOrigin(devHost string) string {
	host := strings.TrimSpace(devHost)
	if host == "" || isLoopbackHost(host) {
		return localOrigin
	}
	return "https://" + host
}

func isLoopbackHost(host string) bool {
	if strings.EqualFold(host, "localhost") {
		return true
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback()
	}
	return false
}

// normalizeBaseURL strips a trailing slash so path joining stays predictable.
func normalizeBaseURL(base string) string {
	return strings.TrimRight(strings.TrimSpace(base), "/")
}
