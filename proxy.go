package jwtattributes

import (
	"net/http"
	"strings"
)

// TrustedProxyConfig selects which forwarded headers are believed when the
// middleware records the URL the client actually requested.
//
// SECURITY WARNING: only enable behind a reverse proxy that strips
// client-supplied forwarded headers, otherwise clients can forge the logged URL.
//
// RFC 7239 Forwarded takes precedence over X-Forwarded-* when both are trusted.
// With several proxies the leftmost value, the one closest to the client, is used.
type TrustedProxyConfig struct {
	TrustXForwardedProto  bool
	TrustXForwardedHost   bool
	TrustXForwardedPrefix bool
	TrustForwarded        bool
}

func (c *TrustedProxyConfig) trustsAny() bool {
	return c != nil && (c.TrustXForwardedProto || c.TrustXForwardedHost || c.TrustXForwardedPrefix || c.TrustForwarded)
}

// WithTrustedProxies configures the forwarded headers used to rebuild the
// logged request URL. A nil config keeps the default of trusting none.
//
// Example:
//
//	middleware, err := jwtattributes.New(
//	    jwtattributes.WithTrustedProxies(&jwtattributes.TrustedProxyConfig{
//	        TrustXForwardedProto: true,
//	        TrustXForwardedHost:  true,
//	    }),
//	)
func WithTrustedProxies(config *TrustedProxyConfig) Option {
	return func(m *Middleware) error {
		m.trustedProxies = config
		return nil
	}
}

// WithStandardProxy trusts X-Forwarded-Proto and X-Forwarded-Host, as set by
// Nginx, Apache or HAProxy.
func WithStandardProxy() Option {
	return WithTrustedProxies(&TrustedProxyConfig{
		TrustXForwardedProto: true,
		TrustXForwardedHost:  true,
	})
}

// WithAPIGatewayProxy additionally trusts X-Forwarded-Prefix for gateways that
// mount the service under a path prefix.
func WithAPIGatewayProxy() Option {
	return WithTrustedProxies(&TrustedProxyConfig{
		TrustXForwardedProto:  true,
		TrustXForwardedHost:   true,
		TrustXForwardedPrefix: true,
	})
}

// WithRFC7239Proxy trusts only the structured Forwarded header.
func WithRFC7239Proxy() Option {
	return WithTrustedProxies(&TrustedProxyConfig{TrustForwarded: true})
}

// requestURL rebuilds the URL of an inbound request as the client saw it.
// Default ports are dropped (RFC 3986 section 6.2.3).
func requestURL(r *http.Request, config *TrustedProxyConfig) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	host := r.Host
	prefix := ""

	if config.trustsAny() {
		var fwdScheme, fwdHost string
		if config.TrustForwarded {
			fwdScheme, fwdHost = parseForwarded(r.Header.Get("Forwarded"))
		}

		switch {
		case fwdScheme != "":
			scheme = fwdScheme
		case config.TrustXForwardedProto && r.Header.Get("X-Forwarded-Proto") != "":
			scheme = leftmost(r.Header.Get("X-Forwarded-Proto"))
		}

		switch {
		case fwdHost != "":
			host = fwdHost
		case config.TrustXForwardedHost && r.Header.Get("X-Forwarded-Host") != "":
			host = leftmost(r.Header.Get("X-Forwarded-Host"))
		}

		if p := r.Header.Get("X-Forwarded-Prefix"); config.TrustXForwardedPrefix && p != "" {
			prefix = "/" + strings.Trim(leftmost(p), "/")
		}
	}

	u := scheme + "://" + stripDefaultPort(host, scheme) + prefix + r.URL.Path
	if r.URL.RawQuery != "" {
		u += "?" + r.URL.RawQuery
	}
	return u
}

// leftmost returns the first entry of a comma separated header value.
func leftmost(header string) string {
	first, _, _ := strings.Cut(header, ",")
	return strings.TrimSpace(first)
}

// parseForwarded reads proto and host from the first element of an RFC 7239
// Forwarded header, e.g. `for=192.0.2.60;proto=https;host="api.example.com"`.
func parseForwarded(forwarded string) (scheme, host string) {
	for _, pair := range strings.Split(leftmost(forwarded), ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"`)
		switch strings.ToLower(name) {
		case "proto":
			scheme = value
		case "host":
			host = value
		}
	}
	return scheme, host
}

func stripDefaultPort(host, scheme string) string {
	i := strings.LastIndex(host, ":")
	// No port, or the colon belongs to a bracketed IPv6 literal.
	if i == -1 || strings.LastIndex(host, "]") > i {
		return host
	}
	port := host[i+1:]
	if (scheme == "http" && port == "80") || (scheme == "https" && port == "443") {
		return host[:i]
	}
	return host
}
