package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dimitarvdimitrov/planwatch/log"
	"github.com/dimitarvdimitrov/planwatch/plan"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type healthReply struct {
	Topology    string    `json:"topology,omitempty"`
	Status      string    `json:"status"`
	Fingerprint uint64    `json:"fingerprint,omitempty"`
	FetchedAt   time.Time `json:"fetched_at,omitempty"`
	Error       string    `json:"error,omitempty"`
}

type namesReply struct {
	Names []string `json:"names"`
	Stale bool     `json:"stale"`
}

type errorReply struct {
	Error string `json:"error"`
}

// NewHTTPHandler serves /healthz, /names and /metrics.
func NewHTTPHandler(plans PlanSource, gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", healthz(plans))
	mux.HandleFunc("/names", names(plans))
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}

func healthz(plans PlanSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o := plans.Resolve(r.Context())
		if o.Err != nil {
			writeJSON(w, http.StatusServiceUnavailable, healthReply{Status: "unavailable", Error: o.Err.Error()})
			return
		}

		reply := healthReply{
			Topology:    o.Snapshot.Topology,
			Status:      "fresh",
			Fingerprint: o.Snapshot.Fingerprint,
			FetchedAt:   o.Snapshot.FetchedAt,
		}
		if o.Stale() {
			reply.Status = "stale"
			reply.Error = o.StaleCause.Error()
		}
		writeJSON(w, http.StatusOK, reply)
	}
}

func names(plans PlanSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, err := plan.ParseRole(r.URL.Query().Get("role"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorReply{Error: err.Error()})
			return
		}

		o := plans.Resolve(r.Context())
		if o.Err != nil {
			writeJSON(w, http.StatusServiceUnavailable, errorReply{Error: o.Err.Error()})
			return
		}

		n, err := o.Snapshot.Names(role)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorReply{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, namesReply{Names: n, Stale: o.Stale()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("writing http response: %s", err)
	}
}
