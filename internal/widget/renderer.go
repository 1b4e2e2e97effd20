package widget

import (
	"go.uber.org/zap"

	"mondclock/internal/clock"
	"mondclock/internal/display"
)

// Renderer computes a Snapshot from the injected clock and writes it into
// the three board slots.
type Renderer struct {
	clock  clock.Clock
	board  *display.Board
	logger *zap.Logger
}

// NewRenderer wires a clock source to a display board. A nil logger is
// replaced with a no-op logger.
func NewRenderer(c clock.Clock, b *display.Board, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{clock: c, board: b, logger: logger}
}

// Render captures the current instant exactly once, derives all three
// labels from that single value, and overwrites the board slots. A missing
// slot is logged and skipped so a broken display target never stops the
// render loop.
func (r *Renderer) Render() Snapshot {
	snap := At(r.clock.Now())
	r.write(SlotDay, snap.Weekday)
	r.write(SlotDate, snap.Date)
	r.write(SlotTime, snap.Time)
	return snap
}

func (r *Renderer) write(slot, text string) {
	if err := r.board.Set(slot, text); err != nil {
		r.logger.Warn("skipping absent display slot",
			zap.String("slot", slot),
			zap.Error(err))
	}
}
