package statemgr

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
)

// localFSLocator reads master locations from a directory tree laid out like
// the etcd keyspace: {root}/tmasters/{topology}.
type localFSLocator struct {
	root string
}

func NewLocalFSLocator(root string) localFSLocator {
	return localFSLocator{root: root}
}

func (l localFSLocator) Location(_ context.Context, topology string) (Location, error) {
	if err := checkTopology(topology); err != nil {
		return Location{}, err
	}

	file := filepath.Join(l.root, "tmasters", topology)
	raw, err := ioutil.ReadFile(file)
	if os.IsNotExist(err) {
		return Location{}, fmt.Errorf("no master registered for %s at %s: %w", topology, file, ErrLocationUnavailable)
	} else if err != nil {
		return Location{}, fmt.Errorf("reading %s: %v: %w", file, err, ErrLocationUnavailable)
	}
	return decodeLocation(topology, raw)
}

// Publish writes the location of a topology master, replacing the previous one.
func (l localFSLocator) Publish(loc Location) error {
	if err := checkTopology(loc.TopologyName); err != nil {
		return err
	}
	raw, err := EncodeLocation(loc)
	if err != nil {
		return err
	}

	dir := filepath.Join(l.root, "tmasters")
	if err = os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := ioutil.TempFile(dir, "."+loc.TopologyName)
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(dir, loc.TopologyName))
}
