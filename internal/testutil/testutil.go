// Package testutil provides small builders shared by the package tests.
package testutil

import (
	"time"

	"github.com/pumpkinkking/whereeatai/a2a"
)

// Registration builds a minimal active registration with the given
// capability names.
func Registration(agentID, name string, capNames ...string) a2a.Registration {
	caps := make([]a2a.Capability, 0, len(capNames))
	for _, n := range capNames {
		caps = append(caps, a2a.Capability{Name: n})
	}
	return a2a.Registration{
		AgentID:       agentID,
		Name:          name,
		Capabilities:  caps,
		Status:        a2a.StatusActive,
		LastHeartbeat: time.Now(),
	}
}
