package widget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mondclock/internal/clock"
	"mondclock/internal/display"
)

func TestRenderer_WritesAllSlotsFromOneCapture(t *testing.T) {
	fake := clock.NewFake(time.Date(2024, time.March, 7, 0, 5, 0, 0, time.UTC))
	board := display.NewBoard(SlotDay, SlotDate, SlotTime)
	r := NewRenderer(fake, board, zap.NewNop())

	snap := r.Render()

	// All three fields must derive from a single read of the clock so they
	// can never tear across a minute boundary.
	assert.Equal(t, 1, fake.NowCalls())

	day, err := board.Get(SlotDay)
	require.NoError(t, err)
	date, err := board.Get(SlotDate)
	require.NoError(t, err)
	tm, err := board.Get(SlotTime)
	require.NoError(t, err)

	assert.Equal(t, snap.Weekday, day)
	assert.Equal(t, snap.Date, date)
	assert.Equal(t, snap.Time, tm)
}

func TestRenderer_OverwritesOnNextRender(t *testing.T) {
	fake := clock.NewFake(time.Date(2024, time.March, 7, 0, 5, 0, 0, time.UTC))
	board := display.NewBoard(SlotDay, SlotDate, SlotTime)
	r := NewRenderer(fake, board, nil)

	r.Render()
	fake.Advance(time.Minute)
	r.Render()

	tm, err := board.Get(SlotTime)
	require.NoError(t, err)
	assert.Equal(t, "- 12:06 AM -", tm)
}

func TestRenderer_MissingSlotIsNonFatal(t *testing.T) {
	fake := clock.NewFake(time.Date(2024, time.March, 7, 0, 5, 0, 0, time.UTC))
	// The "time" slot was never registered.
	board := display.NewBoard(SlotDay, SlotDate)
	r := NewRenderer(fake, board, nil)

	assert.NotPanics(t, func() { r.Render() })

	// The registered slots were still written, and a later render still
	// succeeds.
	day, err := board.Get(SlotDay)
	require.NoError(t, err)
	assert.Equal(t, "Thursday", day)

	assert.NotPanics(t, func() { r.Render() })
}
