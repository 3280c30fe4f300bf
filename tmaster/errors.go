package tmaster

import (
	"errors"

	"github.com/dimitarvdimitrov/planwatch/statemgr"
)

var (
	ErrTransport = errors.New("topology master unreachable")
	ErrDecode    = errors.New("malformed physical plan")
)

const (
	KindLocation  = "location"
	KindTransport = "transport"
	KindDecode    = "decode"
	KindUnknown   = "unknown"
)

// Kind classifies a fetch error. It is meant for labels and log fields.
func Kind(err error) string {
	switch {
	case errors.Is(err, statemgr.ErrLocationUnavailable):
		return KindLocation
	case errors.Is(err, ErrTransport):
		return KindTransport
	case errors.Is(err, ErrDecode):
		return KindDecode
	default:
		return KindUnknown
	}
}
