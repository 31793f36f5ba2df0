package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fleetdeck/fleetdeck/internal/config"
)

func TestGateStartsIdle(t *testing.T) {
	var g Gate
	assert.False(t, g.Armed())
}

func TestGateArmCapturesTarget(t *testing.T) {
	var g Gate
	g.Arm(config.Target{Name: "nav-unit", SSH: "robot-nav"})

	assert.True(t, g.Armed())
	assert.Equal(t, "nav-unit", g.Target().Name)
}

func TestGateRearmLastWins(t *testing.T) {
	var g Gate
	g.Arm(config.Target{Name: "nav-unit"})
	g.Arm(config.Target{Name: "arm-unit"})

	assert.True(t, g.Armed())
	assert.Equal(t, "arm-unit", g.Target().Name)
}

func TestGateCancel(t *testing.T) {
	var g Gate
	g.Arm(config.Target{Name: "nav-unit"})
	g.Cancel()

	assert.False(t, g.Armed())
	assert.Empty(t, g.Target().Name)
}

func TestGateConfirmReturnsArmedTarget(t *testing.T) {
	var g Gate
	g.Arm(config.Target{Name: "nav-unit"})

	target, armed := g.Confirm()
	assert.True(t, armed)
	assert.Equal(t, "nav-unit", target.Name)
	assert.False(t, g.Armed(), "Confirm always lands back in idle")
}

func TestGateConfirmWhileIdle(t *testing.T) {
	var g Gate

	_, armed := g.Confirm()
	assert.False(t, armed)
	assert.False(t, g.Armed())
}

func TestGateConfirmAfterCancelDispatchesNothing(t *testing.T) {
	var g Gate
	g.Arm(config.Target{Name: "nav-unit"})
	g.Cancel()

	_, armed := g.Confirm()
	assert.False(t, armed)
}
