// Package statemgr resolves where the topology master of a topology is
// currently running. Locations are looked up on every call, they are never
// cached since the master can be rescheduled to a different host at any time.
package statemgr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"path"
	"strconv"

	"github.com/dimitarvdimitrov/planwatch/api/pb"
	"github.com/golang/protobuf/proto"
)

var ErrLocationUnavailable = errors.New("topology master location unavailable")

// Locator finds the topology master of a topology.
type Locator interface {
	Location(ctx context.Context, topology string) (Location, error)
}

// Location is the network address of a topology master.
type Location struct {
	TopologyName   string
	TopologyID     string
	Host           string
	ControllerPort int
	MasterPort     int
	StatsPort      int
}

// ControllerAddr is the host:port the master serves its http controller on.
func (l Location) ControllerAddr() string {
	return net.JoinHostPort(l.Host, strconv.Itoa(l.ControllerPort))
}

func (l Location) valid() bool {
	return l.Host != "" && l.ControllerPort > 0
}

// tmasterPath is where the state manager keeps the location of a topology's master.
func tmasterPath(root, topology string) string {
	return path.Join("/", root, "tmasters", topology)
}

func checkTopology(topology string) error {
	if topology == "" {
		return fmt.Errorf("empty topology name: %w", ErrLocationUnavailable)
	}
	return nil
}

// decodeLocation parses a serialized pb.TMasterLocation.
func decodeLocation(topology string, raw []byte) (Location, error) {
	loc := &pb.TMasterLocation{}
	if err := proto.Unmarshal(raw, loc); err != nil {
		return Location{}, fmt.Errorf("decoding location of %s: %v: %w", topology, err, ErrLocationUnavailable)
	}

	l := Location{
		TopologyName:   loc.GetTopologyName(),
		TopologyID:     loc.GetTopologyId(),
		Host:           loc.GetHost(),
		ControllerPort: int(loc.GetControllerPort()),
		MasterPort:     int(loc.GetMasterPort()),
		StatsPort:      int(loc.GetStatsPort()),
	}
	if !l.valid() {
		return Location{}, fmt.Errorf("incomplete location of %s (%q): %w", topology, l.ControllerAddr(), ErrLocationUnavailable)
	}
	return l, nil
}

// EncodeLocation serializes a location the way decodeLocation expects it.
// Used by tools and tests that publish a master location.
func EncodeLocation(l Location) ([]byte, error) {
	return proto.Marshal(&pb.TMasterLocation{
		TopologyName:   l.TopologyName,
		TopologyId:     l.TopologyID,
		Host:           l.Host,
		ControllerPort: int32(l.ControllerPort),
		MasterPort:     int32(l.MasterPort),
		StatsPort:      int32(l.StatsPort),
	})
}
