package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStateForScoreTotalAndMonotonic(t *testing.T) {
	th := DefaultCapacityThresholds

	order := map[CapacityState]int{
		CapacitySameDayFeeWaived: 0,
		CapacityLimitedSameDay:   1,
		CapacityNextDay:          2,
		CapacityEmergencyOnly:    3,
	}

	prev := -1
	for score := 0; score <= 100; score++ {
		state := th.StateForScore(score)
		rank, known := order[state]
		assert.True(t, known, "score %d mapped to unexpected state %s", score, state)
		assert.GreaterOrEqual(t, rank, prev, "state rank regressed at score %d", score)
		prev = rank
	}
}

func TestStateForScoreBoundaries(t *testing.T) {
	th := CapacityThresholds{FeeWaivedMax: 25, LimitedSameDayMax: 60, NextDayMax: 85}

	assert.Equal(t, CapacitySameDayFeeWaived, th.StateForScore(24))
	assert.Equal(t, CapacityLimitedSameDay, th.StateForScore(25))
	assert.Equal(t, CapacityLimitedSameDay, th.StateForScore(59))
	assert.Equal(t, CapacityNextDay, th.StateForScore(60))
	assert.Equal(t, CapacityNextDay, th.StateForScore(84))
	assert.Equal(t, CapacityEmergencyOnly, th.StateForScore(85))
	assert.Equal(t, CapacityEmergencyOnly, th.StateForScore(100))
}

func TestThresholdsValid(t *testing.T) {
	assert.True(t, DefaultCapacityThresholds.Valid())
	assert.False(t, CapacityThresholds{FeeWaivedMax: 60, LimitedSameDayMax: 25, NextDayMax: 85}.Valid())
	assert.False(t, CapacityThresholds{FeeWaivedMax: 0, LimitedSameDayMax: 60, NextDayMax: 85}.Valid())
	assert.False(t, CapacityThresholds{FeeWaivedMax: 25, LimitedSameDayMax: 60, NextDayMax: 101}.Valid())
}

func TestSnapshotExpiry(t *testing.T) {
	now := time.Now()
	snap := CapacitySnapshot{ExpiresAt: now.Add(5 * time.Minute)}
	assert.False(t, snap.Expired(now))
	assert.True(t, snap.Expired(now.Add(6*time.Minute)))
}

func TestIdentityKeyPriority(t *testing.T) {
	email := "Jane@Example.com"
	req := BookingRequest{
		FirstName: "Jane", LastName: "Doe",
		Phone: "(617) 555-1234", Email: &email, Zip: "02169",
	}
	assert.Equal(t, "email:jane@example.com", req.IdentityKey())

	req.Email = nil
	assert.Equal(t, "phone:6175551234", req.IdentityKey())

	req.Phone = "bad"
	assert.Equal(t, "name:jane doe:02169", req.IdentityKey())
}
