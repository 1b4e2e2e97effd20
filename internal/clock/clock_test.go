package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystem_Now(t *testing.T) {
	before := time.Now()
	got := NewSystem().Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestFake_NowIsFrozen(t *testing.T) {
	instant := time.Date(2024, time.March, 7, 0, 5, 0, 0, time.UTC)
	fake := NewFake(instant)

	assert.Equal(t, instant, fake.Now())
	assert.Equal(t, instant, fake.Now())
}

func TestFake_SetAndAdvance(t *testing.T) {
	instant := time.Date(2024, time.March, 7, 0, 5, 0, 0, time.UTC)
	fake := NewFake(instant)

	fake.Advance(time.Minute)
	assert.Equal(t, instant.Add(time.Minute), fake.Now())

	later := time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC)
	fake.Set(later)
	assert.Equal(t, later, fake.Now())
}

func TestFake_CountsNowCalls(t *testing.T) {
	fake := NewFake(time.Now())

	assert.Equal(t, 0, fake.NowCalls())
	fake.Now()
	fake.Now()
	assert.Equal(t, 2, fake.NowCalls())
}
