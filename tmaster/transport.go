package tmaster

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/dimitarvdimitrov/planwatch/log"
	"github.com/rs/dnscache"
)

// NewHTTPClient returns the client the fetcher talks to masters with. When
// resolver is not nil host names are resolved through it.
func NewHTTPClient(timeout time.Duration, resolver *dnscache.Resolver) *http.Client {
	dialer := &net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext
	if resolver != nil {
		transport.DialContext = cachedDialContext(dialer, resolver)
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

func cachedDialContext(dialer *net.Dialer, resolver *dnscache.Resolver) func(ctx context.Context, network, addr string) (net.Conn, error) {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			return nil, err
		}
		ips, err := resolver.LookupHost(ctx, host)
		if err != nil {
			return nil, err
		}
		if len(ips) == 0 {
			return nil, &net.DNSError{Err: "no such host", Name: host, IsNotFound: true}
		}

		var conn net.Conn
		for _, ip := range ips {
			conn, err = dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
			if err == nil {
				return conn, nil
			}
		}
		return nil, err
	}
}

// RefreshDNS refreshes the resolver every interval until ctx is done. Entries
// which weren't used since the last refresh are dropped.
func RefreshDNS(ctx context.Context, resolver *dnscache.Resolver, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-t.C:
			resolver.Refresh(true)
			log.Debug("refreshed dns cache")
		case <-ctx.Done():
			return
		}
	}
}
