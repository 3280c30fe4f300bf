// Package plan holds the decoded physical plan of a topology and the read-only
// views the rest of the service derives from it.
package plan

import (
	"time"

	"github.com/dimitarvdimitrov/planwatch/api/pb"
	"github.com/golang/protobuf/proto"
	"github.com/minio/highwayhash"
)

// fingerprintKey is fixed so that fingerprints are comparable across processes.
var fingerprintKey = []byte("planwatch-physical-plan-hash-key")

// Snapshot is a physical plan as it was returned by the topology master at
// FetchedAt. A Snapshot is never modified after it has been created, callers
// must not modify the plan either.
type Snapshot struct {
	Topology    string
	Fingerprint uint64
	FetchedAt   time.Time

	plan *pb.PhysicalPlan
}

// Decode unmarshals the protobuf encoded physical plan in raw.
func Decode(topology string, raw []byte, fetchedAt time.Time) (*Snapshot, error) {
	pp := &pb.PhysicalPlan{}
	if err := proto.Unmarshal(raw, pp); err != nil {
		return nil, err
	}
	return New(topology, pp, fetchedAt)
}

// New wraps an already decoded plan. The fingerprint is taken over the
// canonical encoding of pp, so a plan gets the same fingerprint whether it
// was decoded from the wire or built in memory.
func New(topology string, pp *pb.PhysicalPlan, fetchedAt time.Time) (*Snapshot, error) {
	canonical, err := proto.Marshal(pp)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Topology:    topology,
		Fingerprint: Fingerprint(canonical),
		FetchedAt:   fetchedAt,
		plan:        pp,
	}, nil
}

// Fingerprint hashes the encoded plan.
func Fingerprint(raw []byte) uint64 {
	h, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		// the key is a 32 byte constant
		panic(err)
	}
	_, _ = h.Write(raw)
	return h.Sum64()
}

// Plan returns the decoded plan. It is shared and must be treated as read-only.
func (s *Snapshot) Plan() *pb.PhysicalPlan {
	return s.plan
}

// SpoutNames returns the component name of every spout in plan order.
func (s *Snapshot) SpoutNames() []string {
	spouts := s.plan.GetTopology().GetSpouts()
	names := make([]string, 0, len(spouts))
	for _, spout := range spouts {
		names = append(names, spout.GetComp().GetName())
	}
	return names
}

// BoltNames returns the component name of every bolt in plan order.
func (s *Snapshot) BoltNames() []string {
	bolts := s.plan.GetTopology().GetBolts()
	names := make([]string, 0, len(bolts))
	for _, bolt := range bolts {
		names = append(names, bolt.GetComp().GetName())
	}
	return names
}

// ComponentNames returns the bolt names followed by the spout names.
func (s *Snapshot) ComponentNames() []string {
	names := s.BoltNames()
	return append(names, s.SpoutNames()...)
}

// Equal reports whether both snapshots carry the same plan.
func (s *Snapshot) Equal(other *Snapshot) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Fingerprint == other.Fingerprint && proto.Equal(s.plan, other.plan)
}
