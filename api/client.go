package api

import (
	"context"

	"github.com/dimitarvdimitrov/planwatch/api/pb"
	"google.golang.org/grpc"
)

// Client talks to a running planwatch over grpc.
type Client struct {
	conn   *grpc.ClientConn
	client pb.PlanServiceClient
}

func NewClient(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithInsecure()}, opts...)
	conn, err := grpc.Dial(addr, opts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		conn:   conn,
		client: pb.NewPlanServiceClient(conn),
	}, nil
}

// Names returns the component names of the given role and whether they come
// from a cached plan.
func (c *Client) Names(ctx context.Context, role pb.Role) ([]string, bool, error) {
	reply, err := c.client.GetNames(ctx, &pb.NamesRequest{Role: role}, grpc.WaitForReady(true))
	if err != nil {
		return nil, false, err
	}
	return reply.GetNames(), reply.GetStale(), nil
}

func (c *Client) Plan(ctx context.Context, requireFresh bool) (*pb.PlanReply, error) {
	return c.client.GetPlan(ctx, &pb.PlanRequest{RequireFresh: requireFresh}, grpc.WaitForReady(true))
}

func (c *Client) Close() error {
	return c.conn.Close()
}
