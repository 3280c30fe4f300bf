package api

import (
	"context"
	"errors"

	"github.com/dimitarvdimitrov/planwatch/api/pb"
	"github.com/dimitarvdimitrov/planwatch/log"
	"github.com/dimitarvdimitrov/planwatch/plan"
	"github.com/dimitarvdimitrov/planwatch/provider"
	"github.com/golang/protobuf/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PlanSource is what the api needs from the plan provider.
type PlanSource interface {
	Current(ctx context.Context) (*plan.Snapshot, error)
	Resolve(ctx context.Context) provider.Outcome
}

type planServer struct {
	plans PlanSource
}

func NewPlanServer(plans PlanSource) *planServer {
	return &planServer{plans: plans}
}

func (server *planServer) GetNames(ctx context.Context, req *pb.NamesRequest) (*pb.NamesReply, error) {
	log.Debug("[plan_api] received names request ", req.GetRole())
	if _, ok := pb.Role_name[int32(req.GetRole())]; !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown role %d", req.GetRole())
	}

	o := server.plans.Resolve(ctx)
	if o.Err != nil {
		return nil, unavailable(o.Err)
	}

	names, err := o.Snapshot.Names(req.GetRole())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &pb.NamesReply{
		Names: names,
		Stale: o.Stale(),
	}, nil
}

func (server *planServer) GetPlan(ctx context.Context, req *pb.PlanRequest) (*pb.PlanReply, error) {
	log.Debug("[plan_api] received plan request, require fresh: ", req.GetRequireFresh())

	var o provider.Outcome
	if req.GetRequireFresh() {
		s, err := server.plans.Current(ctx)
		o = provider.Outcome{Snapshot: s, Err: err}
	} else {
		o = server.plans.Resolve(ctx)
	}
	if o.Err != nil {
		return nil, unavailable(o.Err)
	}

	return &pb.PlanReply{
		// the snapshot's plan is shared with other readers
		Plan:              proto.Clone(o.Snapshot.Plan()).(*pb.PhysicalPlan),
		Fingerprint:       o.Snapshot.Fingerprint,
		FetchedAtUnixNano: o.Snapshot.FetchedAt.UnixNano(),
		Stale:             o.Stale(),
	}, nil
}

func unavailable(err error) error {
	var fetchErr *provider.FetchError
	if errors.As(err, &fetchErr) {
		return status.Error(codes.Unavailable, fetchErr.Error())
	}
	return status.Error(codes.Internal, err.Error())
}
