// Package recording provides a Surface that captures draw operations.
//
// The recording surface enables draw-sequence inspection and replay by
// capturing operations as typed command structures instead of producing
// pixels. Commands are stored in order and can be examined in tests or
// replayed to any other Surface.
//
// Typed command structs are used rather than a binary format so that a
// recorded frame stays inspectable and debuggable.
//
// # Example
//
//	rec := recording.NewSurface(800, 600)
//	scene.Render(rec, 800, 600, time.Now())
//	r := rec.Finish()
//
//	// Inspect:
//	for _, cmd := range r.Commands() { ... }
//
//	// Or replay to a real backend:
//	r.Playback(softwareSurface)
package recording

import "github.com/gogpu/orrery"

// CommandType identifies the type of a command.
// Each command type corresponds to one Surface method.
type CommandType uint8

const (
	// CmdFillRect fills a rectangle with a solid color.
	CmdFillRect CommandType = iota

	// CmdFillCircle fills a circle with a solid color.
	CmdFillCircle

	// CmdDrawImage draws an image transformed about a pivot.
	CmdDrawImage

	// CmdPushClip pushes a clip rectangle.
	CmdPushClip

	// CmdPopClip pops the innermost clip rectangle.
	CmdPopClip
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdFillRect:   "FillRect",
	CmdFillCircle: "FillCircle",
	CmdDrawImage:  "DrawImage",
	CmdPushClip:   "PushClip",
	CmdPopClip:    "PopClip",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// FillRectCommand records a solid rectangle fill.
type FillRectCommand struct {
	Rect  orrery.Rect
	Color orrery.RGBA
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// FillCircleCommand records a solid circle fill.
type FillCircleCommand struct {
	X, Y   float64
	Radius float64
	Color  orrery.RGBA
}

// Type implements Command.
func (FillCircleCommand) Type() CommandType { return CmdFillCircle }

// DrawImageCommand records one transformed image draw pass, including
// the full blend/flip/rotation parameters of the pass.
type DrawImageCommand struct {
	Image orrery.Image
	Opts  orrery.DrawImageOptions
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// PushClipCommand records a clip push.
type PushClipCommand struct {
	Rect orrery.Rect
}

// Type implements Command.
func (PushClipCommand) Type() CommandType { return CmdPushClip }

// PopClipCommand records a clip pop.
type PopClipCommand struct{}

// Type implements Command.
func (PopClipCommand) Type() CommandType { return CmdPopClip }
