package pkg

import (
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strings"
)

var localDockerIpRegex = regexp.MustCompile(`^172\.\d{1,3}\.0\.1$`)

// IPIsLocal reports whether the address is the loopback or a docker bridge
// gateway. The address may carry a port.
func IPIsLocal(addr string) bool {
	host := stripPort(addr)
	if host == "127.0.0.1" || host == "::1" {
		return true
	}
	return localDockerIpRegex.MatchString(host)
}

// ReadUserIP returns the client IP, preferring the headers set by the
// reverse proxy. Local clients are all reported as "localhost".
func ReadUserIP(r *http.Request) (string, error) {
	addr := r.Header.Get("X-Real-Ip")
	if addr == "" {
		// client, proxy1, proxy2
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			addr = strings.TrimSpace(strings.Split(fwd, ",")[0])
		}
	}
	if addr == "" {
		addr = r.RemoteAddr
	}

	if IPIsLocal(addr) {
		return "localhost", nil
	}

	host := stripPort(addr)
	if net.ParseIP(host) == nil {
		return "", fmt.Errorf("ip addr %s is invalid", addr)
	}
	return host, nil
}

func stripPort(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
