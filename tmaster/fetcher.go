// Package tmaster fetches the current physical plan of a topology from its
// topology master.
package tmaster

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/dimitarvdimitrov/planwatch/log"
	"github.com/dimitarvdimitrov/planwatch/plan"
	"github.com/dimitarvdimitrov/planwatch/statemgr"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// Fetcher asks the topology master for the physical plan. It does not cache
// anything: every call looks up the master's location again.
type Fetcher struct {
	locator statemgr.Locator
	client  *http.Client
	cfg     Config
	now     func() time.Time
}

func NewFetcher(locator statemgr.Locator, client *http.Client, cfg Config) *Fetcher {
	cfg.Normalize()
	if client == nil {
		client = NewHTTPClient(cfg.RequestTimeout.Duration, nil)
	}
	return &Fetcher{
		locator: locator,
		client:  client,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Fetch returns the physical plan the master of topology currently runs.
// Errors match statemgr.ErrLocationUnavailable, ErrTransport or ErrDecode.
func (f *Fetcher) Fetch(ctx context.Context, topology string) (*plan.Snapshot, error) {
	loc, err := f.locator.Location(ctx, topology)
	if err != nil {
		return nil, err
	}

	url := f.planURL(loc)
	requestID := uuid.New().String()
	log.Debugw("querying physical plan", log.Topology(topology), log.URL(url), log.RequestID(requestID))

	body, err := f.get(ctx, url, requestID)
	if err != nil {
		return nil, err
	}
	log.Debugw("master returned physical plan", log.Topology(topology), log.RequestID(requestID), "bytes", len(body))

	return decode(topology, body, f.now())
}

func (f *Fetcher) planURL(loc statemgr.Location) string {
	return "http://" + loc.ControllerAddr() + f.cfg.QueryPath
}

func (f *Fetcher) get(ctx context.Context, url, requestID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %v: %w", url, err, ErrTransport)
	}
	req.Header.Set(requestIDHeader, requestID)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %v: %w", url, err, ErrTransport)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(ioutil.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("GET %s: status %s: %w", url, resp.Status, ErrTransport)
	}

	body, err := ioutil.ReadAll(io.LimitReader(resp.Body, f.cfg.MaxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading response of %s: %v: %w", url, err, ErrTransport)
	}
	if int64(len(body)) > f.cfg.MaxResponseBytes {
		return nil, fmt.Errorf("response of %s exceeds %d bytes: %w", url, f.cfg.MaxResponseBytes, ErrTransport)
	}
	return body, nil
}

// decode unwraps the base64 envelope and unmarshals the plan inside it.
func decode(topology string, body []byte, fetchedAt time.Time) (*plan.Snapshot, error) {
	raw := make([]byte, base64.StdEncoding.DecodedLen(len(body)))
	n, err := base64.StdEncoding.Decode(raw, bytes.TrimSpace(body))
	if err != nil {
		return nil, fmt.Errorf("base64 envelope of %s: %v: %w", topology, err, ErrDecode)
	}

	snapshot, err := plan.Decode(topology, raw[:n], fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("physical plan of %s: %v: %w", topology, err, ErrDecode)
	}
	return snapshot, nil
}
