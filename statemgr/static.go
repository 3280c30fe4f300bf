package statemgr

import (
	"context"
	"fmt"
)

// staticLocator always points at the same master. Useful when the master
// address is known up front, e.g. while developing against a local topology.
type staticLocator struct {
	host string
	port int
}

func NewStaticLocator(host string, port int) staticLocator {
	return staticLocator{host: host, port: port}
}

func (s staticLocator) Location(_ context.Context, topology string) (Location, error) {
	if err := checkTopology(topology); err != nil {
		return Location{}, err
	}
	l := Location{
		TopologyName:   topology,
		Host:           s.host,
		ControllerPort: s.port,
	}
	if !l.valid() {
		return Location{}, fmt.Errorf("static location %q: %w", l.ControllerAddr(), ErrLocationUnavailable)
	}
	return l, nil
}
