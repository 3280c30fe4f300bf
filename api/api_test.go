package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dimitarvdimitrov/planwatch/api/pb"
	"github.com/dimitarvdimitrov/planwatch/plan"
	"github.com/dimitarvdimitrov/planwatch/provider"
	"github.com/dimitarvdimitrov/planwatch/tmaster"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type fakeFetcher struct {
	s   *plan.Snapshot
	err error
}

func (f *fakeFetcher) Fetch(context.Context, string) (*plan.Snapshot, error) {
	return f.s, f.err
}

var errTransport = fmt.Errorf("GET http://10.0.0.5:9000/get_current_physical_plan: status 500: %w", tmaster.ErrTransport)

func testSnapshot(t *testing.T) *plan.Snapshot {
	pp := &pb.PhysicalPlan{Topology: &pb.Topology{
		Name:   "wordcount",
		Spouts: []*pb.Spout{{Comp: &pb.Component{Name: "word"}}},
		Bolts:  []*pb.Bolt{{Comp: &pb.Component{Name: "count"}}},
	}}
	s, err := plan.New("wordcount", pp, time.Unix(1700000000, 0))
	require.NoError(t, err)
	return s
}

func startServer(t *testing.T, plans PlanSource) *Client {
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	pb.RegisterPlanServiceServer(s, NewPlanServer(plans))
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	dialer := func(context.Context, string) (net.Conn, error) {
		return lis.Dial()
	}
	c, err := NewClient("bufnet", grpc.WithContextDialer(dialer))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestGrpcNames(t *testing.T) {
	f := &fakeFetcher{s: testSnapshot(t)}
	c := startServer(t, provider.New("wordcount", f, nil))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	names, stale, err := c.Names(ctx, pb.Role_ALL)
	require.NoError(t, err)
	assert.False(t, stale)
	assert.Equal(t, []string{"count", "word"}, names)

	names, _, err = c.Names(ctx, pb.Role_SPOUTS)
	require.NoError(t, err)
	assert.Equal(t, []string{"word"}, names)

	f.s, f.err = nil, errTransport
	names, stale, err = c.Names(ctx, pb.Role_BOLTS)
	require.NoError(t, err)
	assert.True(t, stale)
	assert.Equal(t, []string{"count"}, names)

	_, _, err = c.Names(ctx, pb.Role(7))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGrpcNamesUnavailable(t *testing.T) {
	c := startServer(t, provider.New("wordcount", &fakeFetcher{err: errTransport}, nil))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, _, err := c.Names(ctx, pb.Role_ALL)
	assert.Equal(t, codes.Unavailable, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "wordcount")
}

func TestGrpcPlan(t *testing.T) {
	snap := testSnapshot(t)
	f := &fakeFetcher{s: snap}
	c := startServer(t, provider.New("wordcount", f, nil))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reply, err := c.Plan(ctx, true)
	require.NoError(t, err)
	assert.False(t, reply.GetStale())
	assert.Equal(t, snap.Fingerprint, reply.GetFingerprint())
	assert.Equal(t, snap.FetchedAt.UnixNano(), reply.GetFetchedAtUnixNano())
	assert.Equal(t, "word", reply.GetPlan().GetTopology().GetSpouts()[0].GetComp().GetName())

	f.s, f.err = nil, errTransport

	reply, err = c.Plan(ctx, false)
	require.NoError(t, err)
	assert.True(t, reply.GetStale())

	_, err = c.Plan(ctx, true)
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func TestHealthz(t *testing.T) {
	f := &fakeFetcher{err: errTransport}
	h := NewHTTPHandler(provider.New("wordcount", f, nil), prometheus.NewRegistry())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	f.s, f.err = testSnapshot(t), nil
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var reply healthReply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.Equal(t, "fresh", reply.Status)
	assert.Equal(t, "wordcount", reply.Topology)

	f.s, f.err = nil, errTransport
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.Equal(t, "stale", reply.Status)
	assert.Contains(t, reply.Error, "status 500")
}

func TestNamesHandler(t *testing.T) {
	f := &fakeFetcher{s: testSnapshot(t)}
	h := NewHTTPHandler(provider.New("wordcount", f, nil), prometheus.NewRegistry())

	testCases := []struct {
		query  string
		status int
		names  []string
	}{
		{"", http.StatusOK, []string{"count", "word"}},
		{"?role=spouts", http.StatusOK, []string{"word"}},
		{"?role=bolts", http.StatusOK, []string{"count"}},
		{"?role=sinks", http.StatusBadRequest, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/names"+tc.query, nil))
			require.Equal(t, tc.status, rec.Code)
			if tc.names == nil {
				return
			}
			var reply namesReply
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
			assert.Equal(t, tc.names, reply.Names)
			assert.False(t, reply.Stale)
		})
	}
}

func TestNamesHandlerUnavailable(t *testing.T) {
	h := NewHTTPHandler(provider.New("wordcount", &fakeFetcher{err: errTransport}, nil), prometheus.NewRegistry())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/names", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "planwatch_test_total", Help: "test"})
	reg.MustRegister(c)
	c.Inc()

	h := NewHTTPHandler(provider.New("wordcount", &fakeFetcher{err: errTransport}, nil), reg)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "planwatch_test_total 1")
}
