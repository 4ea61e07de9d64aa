// Package httpclient builds the outbound HTTP clients used for third-party
// services. Every client shares one tuned transport and is traced.
package httpclient

import (
	"net/http"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var (
	sharedTransport *http.Transport
	once            sync.Once
)

// Transport returns the process-wide transport, created on first use
func Transport() *http.Transport {
	once.Do(func() {
		sharedTransport = &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		}
	})
	return sharedTransport
}

// New returns a traced client with the given overall timeout. A
// non-positive timeout means 30 seconds.
func New(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(Transport()),
	}
}
