package ui

import "iter"

// CommandType tags the payload a Command carries.
type CommandType uint8

const (
	CommandJump CommandType = iota + 1
	CommandClip
	CommandRect
	CommandText
	CommandIcon
)

func (t CommandType) String() string {
	switch t {
	case CommandJump:
		return "jump"
	case CommandClip:
		return "clip"
	case CommandRect:
		return "rect"
	case CommandText:
		return "text"
	case CommandIcon:
		return "icon"
	default:
		return "unknown"
	}
}

// JumpCommand redirects iteration to another index of the command list.
type JumpCommand struct {
	Dst int
}

// ClipCommand sets the scissor rectangle for every command that follows
// until the next ClipCommand.
type ClipCommand struct {
	Rect Rect
}

// RectCommand fills a rectangle.
type RectCommand struct {
	Rect  Rect
	Color Color
}

// TextCommand draws Str with its top-left corner at Pos.
type TextCommand struct {
	Font  Font
	Pos   Vec2
	Color Color
	Str   string
}

// IconCommand draws a built-in icon centered in Rect.
type IconCommand struct {
	Icon  Icon
	Rect  Rect
	Color Color
}

// Command is one entry of the command list. Type selects which payload is
// meaningful; the others are zero. Renderers should ignore types they do
// not know.
type Command struct {
	Type CommandType
	Jump JumpCommand
	Clip ClipCommand
	Rect RectCommand
	Text TextCommand
	Icon IconCommand
}

// CommandListSize is the maximum number of commands one frame may emit.
const CommandListSize = 4096

// PushCommand appends a zeroed command of type t and returns it for the
// caller to fill in. The pointer stays valid until the next Begin.
func (ctx *Context) PushCommand(t CommandType) *Command {
	idx := ctx.pushCommandIndex(t)
	if idx < 0 {
		return &ctx.scratch
	}
	return &ctx.commands[idx]
}

func (ctx *Context) pushCommandIndex(t CommandType) int {
	if len(ctx.commands) >= CommandListSize {
		ctx.fail("PushCommand", ErrCommandOverflow)
		ctx.scratch = Command{Type: t}
		return -1
	}
	ctx.commands = append(ctx.commands, Command{Type: t})
	return len(ctx.commands) - 1
}

func (ctx *Context) pushJump(dst int) int {
	idx := ctx.pushCommandIndex(CommandJump)
	if idx >= 0 {
		ctx.commands[idx].Jump.Dst = dst
	}
	return idx
}

// NextCommand advances *cursor to the next drawable command, following jump
// links. Start with *cursor == 0. It returns false once the list is
// exhausted.
func (ctx *Context) NextCommand(cursor *int) (*Command, bool) {
	for *cursor >= 0 && *cursor < len(ctx.commands) {
		cmd := &ctx.commands[*cursor]
		if cmd.Type == CommandJump {
			*cursor = cmd.Jump.Dst
			continue
		}
		*cursor++
		return cmd, true
	}
	return nil, false
}

// Commands iterates the committed command list in paint order. Only valid
// between End and the next Begin.
func (ctx *Context) Commands() iter.Seq[*Command] {
	return func(yield func(*Command) bool) {
		cursor := 0
		for {
			cmd, ok := ctx.NextCommand(&cursor)
			if !ok || !yield(cmd) {
				return
			}
		}
	}
}

// RawCommands returns the physical command list including jumps, in
// emission order.
func (ctx *Context) RawCommands() []Command { return ctx.commands }

// SetClip emits a CLIP command.
func (ctx *Context) SetClip(r Rect) {
	ctx.PushCommand(CommandClip).Clip.Rect = r
}

// DrawRect fills r, clipped to the current clip rectangle. Nothing is
// emitted when the clipped rectangle is empty.
func (ctx *Context) DrawRect(r Rect, c Color) {
	r = r.Intersect(ctx.ClipRect())
	if r.Empty() {
		return
	}
	cmd := ctx.PushCommand(CommandRect)
	cmd.Rect = RectCommand{Rect: r, Color: c}
}

// DrawBox outlines r with a one pixel border.
func (ctx *Context) DrawBox(r Rect, c Color) {
	ctx.DrawRect(Rect{X: r.X + 1, Y: r.Y, W: r.W - 2, H: 1}, c)
	ctx.DrawRect(Rect{X: r.X + 1, Y: r.Y + r.H - 1, W: r.W - 2, H: 1}, c)
	ctx.DrawRect(Rect{X: r.X, Y: r.Y, W: 1, H: r.H}, c)
	ctx.DrawRect(Rect{X: r.X + r.W - 1, Y: r.Y, W: 1, H: r.H}, c)
}

// DrawText draws str at pos using font.
func (ctx *Context) DrawText(font Font, str string, pos Vec2, c Color) {
	r := Rect{X: pos.X, Y: pos.Y, W: ctx.textWidth(font, str), H: ctx.textHeight(font)}
	clipped := ctx.CheckClip(r)
	if clipped == ClipAll {
		return
	}
	if clipped == ClipPart {
		ctx.SetClip(ctx.ClipRect())
	}
	cmd := ctx.PushCommand(CommandText)
	cmd.Text = TextCommand{Font: font, Pos: pos, Color: c, Str: str}
	if clipped != ClipNone {
		ctx.SetClip(unclippedRect)
	}
}

// DrawIcon draws icon centered in r.
func (ctx *Context) DrawIcon(icon Icon, r Rect, c Color) {
	clipped := ctx.CheckClip(r)
	if clipped == ClipAll {
		return
	}
	if clipped == ClipPart {
		ctx.SetClip(ctx.ClipRect())
	}
	cmd := ctx.PushCommand(CommandIcon)
	cmd.Icon = IconCommand{Icon: icon, Rect: r, Color: c}
	if clipped != ClipNone {
		ctx.SetClip(unclippedRect)
	}
}
