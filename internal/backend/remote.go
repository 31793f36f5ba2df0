package backend

import (
	"time"

	"github.com/fleetdeck/fleetdeck/internal/config"
	"github.com/fleetdeck/fleetdeck/internal/logger"
)

// Remote is the real Backend: ICMP probes, OS terminal windows around
// ssh, and remote commands over SSH.
type Remote struct {
	probeTimeout time.Duration
	diagCommand  string
	log          logger.Logger
}

// NewRemote creates the real backend from the fleet config.
func NewRemote(cfg *config.Config) *Remote {
	return &Remote{
		probeTimeout: cfg.ProbeTimeout,
		diagCommand:  cfg.Diag.Command,
		log:          logger.NewEnvLogger("[backend]"),
	}
}
