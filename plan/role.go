package plan

import (
	"errors"
	"strings"

	"github.com/dimitarvdimitrov/planwatch/api/pb"
)

var ErrUnknownRole = errors.New("unknown component role")

// ParseRole accepts the lowercase role names used on the command line and in
// http queries: "all", "spouts" and "bolts". An empty string means all.
func ParseRole(s string) (pb.Role, error) {
	if s == "" {
		return pb.Role_ALL, nil
	}
	r, ok := pb.Role_value[strings.ToUpper(s)]
	if !ok {
		return pb.Role_ALL, ErrUnknownRole
	}
	return pb.Role(r), nil
}

// Names returns the component names of the given role.
func (s *Snapshot) Names(role pb.Role) ([]string, error) {
	switch role {
	case pb.Role_ALL:
		return s.ComponentNames(), nil
	case pb.Role_SPOUTS:
		return s.SpoutNames(), nil
	case pb.Role_BOLTS:
		return s.BoltNames(), nil
	default:
		return nil, ErrUnknownRole
	}
}
