package test

import (
	"encoding/base64"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"

	"github.com/dimitarvdimitrov/planwatch/api/pb"
	"github.com/dimitarvdimitrov/planwatch/statemgr"
	"github.com/golang/protobuf/proto"
)

// Master is a fake topology master. It serves whatever plan was last set and
// can be told to fail.
type Master struct {
	sync.Mutex

	server   *httptest.Server
	body     []byte
	status   int
	requests int
}

func NewMaster() *Master {
	m := &Master{status: http.StatusOK}
	m.server = httptest.NewServer(http.HandlerFunc(m.serve))
	return m
}

func (m *Master) serve(w http.ResponseWriter, r *http.Request) {
	m.Lock()
	defer m.Unlock()

	m.requests++
	if r.URL.Path != "/get_current_physical_plan" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(m.status)
	if m.status == http.StatusOK {
		_, _ = w.Write(m.body)
	}
}

// SetPlan makes the master serve a plan with the given spouts and bolts.
func (m *Master) SetPlan(spouts, bolts []string) error {
	topology := &pb.Topology{Name: "wordcount"}
	for _, s := range spouts {
		topology.Spouts = append(topology.Spouts, &pb.Spout{Comp: &pb.Component{Name: s}})
	}
	for _, b := range bolts {
		topology.Bolts = append(topology.Bolts, &pb.Bolt{Comp: &pb.Component{Name: b}})
	}
	raw, err := proto.Marshal(&pb.PhysicalPlan{Topology: topology})
	if err != nil {
		return err
	}

	m.Lock()
	defer m.Unlock()
	m.body = []byte(base64.StdEncoding.EncodeToString(raw))
	return nil
}

// SetBody makes the master answer with a raw body.
func (m *Master) SetBody(body []byte) {
	m.Lock()
	defer m.Unlock()
	m.body = body
}

// Fail makes the master answer every request with status.
func (m *Master) Fail(status int) {
	m.Lock()
	defer m.Unlock()
	m.status = status
}

func (m *Master) Recover() {
	m.Fail(http.StatusOK)
}

func (m *Master) Requests() int {
	m.Lock()
	defer m.Unlock()
	return m.requests
}

// Location is where the state manager should point to for this master.
func (m *Master) Location(topology string) (statemgr.Location, error) {
	u, err := url.Parse(m.server.URL)
	if err != nil {
		return statemgr.Location{}, err
	}
	host, portStr, err := net.SplitHostPort(u.Host)
	if err != nil {
		return statemgr.Location{}, err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return statemgr.Location{}, err
	}
	return statemgr.Location{
		TopologyName:   topology,
		Host:           host,
		ControllerPort: port,
	}, nil
}

func (m *Master) Close() {
	m.server.Close()
}
