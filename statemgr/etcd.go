package statemgr

import (
	"context"
	"fmt"
	"time"

	"github.com/coreos/etcd/clientv3"
)

type etcdLocator struct {
	client *clientv3.Client
	kv     clientv3.KV
	root   string
}

func NewEtcdLocator(endpoints []string, dialTimeout time.Duration, root string) (*etcdLocator, error) {
	client, err := clientv3.New(clientv3.Config{
		Endpoints:   endpoints,
		DialTimeout: dialTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to etcd %v: %w", endpoints, err)
	}
	return &etcdLocator{
		client: client,
		kv:     client.KV,
		root:   root,
	}, nil
}

func (e *etcdLocator) Location(ctx context.Context, topology string) (Location, error) {
	if err := checkTopology(topology); err != nil {
		return Location{}, err
	}

	key := tmasterPath(e.root, topology)
	resp, err := e.kv.Get(ctx, key)
	if err != nil {
		return Location{}, fmt.Errorf("etcd get %s: %v: %w", key, err, ErrLocationUnavailable)
	}
	if len(resp.Kvs) == 0 {
		return Location{}, fmt.Errorf("no master registered for %s at %s: %w", topology, key, ErrLocationUnavailable)
	}
	return decodeLocation(topology, resp.Kvs[0].Value)
}

func (e *etcdLocator) Close() error {
	if e.client == nil {
		return nil
	}
	return e.client.Close()
}
