package recording

import "github.com/gogpu/orrery"

// Surface captures drawing operations as commands. It mirrors the
// orrery.Surface contract but generates commands instead of pixels.
// Use Finish to obtain an immutable Recording that can be inspected
// or replayed.
//
// The Surface is not safe for concurrent use.
type Surface struct {
	width, height float64
	commands      []Command
	clipDepth     int
}

// Compile-time check that Surface satisfies the drawing contract.
var _ orrery.Surface = (*Surface)(nil)

// NewSurface creates a recording surface for the given dimensions.
// The dimensions are informational; draws outside them are still
// recorded, matching a real surface's clipping-free default.
func NewSurface(width, height float64) *Surface {
	return &Surface{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 64),
	}
}

// Width returns the recorded viewport width.
func (s *Surface) Width() float64 { return s.width }

// Height returns the recorded viewport height.
func (s *Surface) Height() float64 { return s.height }

// FillRect implements orrery.Surface.
func (s *Surface) FillRect(r orrery.Rect, c orrery.RGBA) {
	s.commands = append(s.commands, FillRectCommand{Rect: r, Color: c})
}

// FillCircle implements orrery.Surface.
func (s *Surface) FillCircle(cx, cy, radius float64, c orrery.RGBA) {
	s.commands = append(s.commands, FillCircleCommand{X: cx, Y: cy, Radius: radius, Color: c})
}

// DrawImage implements orrery.Surface.
func (s *Surface) DrawImage(img orrery.Image, opts orrery.DrawImageOptions) {
	s.commands = append(s.commands, DrawImageCommand{Image: img, Opts: opts})
}

// PushClip implements orrery.Surface.
func (s *Surface) PushClip(r orrery.Rect) {
	s.clipDepth++
	s.commands = append(s.commands, PushClipCommand{Rect: r})
}

// PopClip implements orrery.Surface. Unbalanced pops are recorded
// as-is; balance checking belongs to the consumer (see ClipBalanced).
func (s *Surface) PopClip() {
	s.clipDepth--
	s.commands = append(s.commands, PopClipCommand{})
}

// ClipBalanced reports whether every PushClip has a matching PopClip.
func (s *Surface) ClipBalanced() bool { return s.clipDepth == 0 }

// Len returns the number of recorded commands.
func (s *Surface) Len() int { return len(s.commands) }

// Reset clears the surface for reuse without deallocating memory.
func (s *Surface) Reset() {
	s.commands = s.commands[:0]
	s.clipDepth = 0
}

// Commands returns a copy of the recorded commands in draw order.
func (s *Surface) Commands() []Command {
	out := make([]Command, len(s.commands))
	copy(out, s.commands)
	return out
}

// Finish returns an immutable Recording of the commands so far and
// leaves the surface ready for further recording.
func (s *Surface) Finish() Recording {
	return Recording{
		width:    s.width,
		height:   s.height,
		commands: s.Commands(),
	}
}

// Recording is an immutable, ordered sequence of draw commands.
type Recording struct {
	width, height float64
	commands      []Command
}

// Len returns the number of commands in the recording.
func (r Recording) Len() int { return len(r.commands) }

// Commands returns a copy of the recording's commands in draw order.
func (r Recording) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// DrawImageCommands returns only the image draw passes, in order.
// Convenient for asserting compositing sequences.
func (r Recording) DrawImageCommands() []DrawImageCommand {
	var draws []DrawImageCommand
	for _, cmd := range r.commands {
		if d, ok := cmd.(DrawImageCommand); ok {
			draws = append(draws, d)
		}
	}
	return draws
}

// Playback replays the recording against another surface in the
// original draw order.
func (r Recording) Playback(dst orrery.Surface) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case FillRectCommand:
			dst.FillRect(c.Rect, c.Color)
		case FillCircleCommand:
			dst.FillCircle(c.X, c.Y, c.Radius, c.Color)
		case DrawImageCommand:
			dst.DrawImage(c.Image, c.Opts)
		case PushClipCommand:
			dst.PushClip(c.Rect)
		case PopClipCommand:
			dst.PopClip()
		}
	}
}
