package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthConstructors(t *testing.T) {
	h := Healthy("connected")
	assert.Equal(t, HealthStateHealthy, h.State)
	assert.Equal(t, "connected", h.Message)
	assert.False(t, h.CheckedAt.IsZero())
	assert.True(t, h.IsHealthy())
	assert.False(t, h.IsUnhealthy())

	d := Degraded("slow responses")
	assert.Equal(t, HealthStateDegraded, d.State)
	assert.False(t, d.IsHealthy())
	assert.False(t, d.IsUnhealthy())

	u := Unhealthy("connection refused")
	assert.Equal(t, HealthStateUnhealthy, u.State)
	assert.True(t, u.IsUnhealthy())
	assert.False(t, u.IsHealthy())
}

func TestHealthStateString(t *testing.T) {
	assert.Equal(t, "healthy", HealthStateHealthy.String())
	assert.Equal(t, "degraded", HealthStateDegraded.String())
	assert.Equal(t, "unhealthy", HealthStateUnhealthy.String())
}
