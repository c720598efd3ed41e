package simhost

import (
	"fmt"
	"slices"

	"github.com/bnema/tiler/internal/domain/entity"
)

// CommandKind names a host command.
type CommandKind string

const (
	CommandMoveResize   CommandKind = "move_resize"
	CommandDecoration   CommandKind = "decoration"
	CommandMaximize     CommandKind = "maximize"
	CommandResizeHandle CommandKind = "resize_handle"
	CommandFocus        CommandKind = "focus"
)

// Command is one recorded call to the host.
type Command struct {
	Kind       CommandKind
	Window     entity.WindowID
	Geometry   entity.Rect
	Decoration string
	Maximize   entity.Maximize
	Handle     entity.ResizeHandle
}

func (c Command) String() string {
	switch c.Kind {
	case CommandMoveResize:
		return fmt.Sprintf("%s %s %s", c.Kind, c.Window, c.Geometry)
	case CommandDecoration:
		return fmt.Sprintf("%s %s %s", c.Kind, c.Window, c.Decoration)
	case CommandMaximize:
		return fmt.Sprintf("%s %s %s", c.Kind, c.Window, c.Maximize)
	default:
		return fmt.Sprintf("%s %s", c.Kind, c.Window)
	}
}

// record logs a command and returns the injected failure for its kind.
// Failed commands are still recorded.
func (h *Host) record(c Command) error {
	h.commands = append(h.commands, c)
	return h.failures[c.Kind]
}

// Commands returns the commands received since the last reset.
func (h *Host) Commands() []Command {
	return slices.Clone(h.commands)
}

// CommandsFor returns the commands of one kind addressed to a window.
func (h *Host) CommandsFor(id entity.WindowID, kind CommandKind) []Command {
	var out []Command
	for _, c := range h.commands {
		if c.Window == id && c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// ResetCommands clears the command log.
func (h *Host) ResetCommands() {
	h.commands = nil
}

// FailCommands makes every subsequent command of the given kind fail with
// err. A nil err clears the failure.
func (h *Host) FailCommands(kind CommandKind, err error) {
	if err == nil {
		delete(h.failures, kind)
		return
	}
	h.failures[kind] = err
}
