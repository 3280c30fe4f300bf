package tmaster

import (
	"time"

	"github.com/dimitarvdimitrov/planwatch/config"
)

func durationOf(d time.Duration) config.Duration {
	return config.Duration{Duration: d}
}
