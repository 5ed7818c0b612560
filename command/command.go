// Package command names the input vocabulary spec §6 assigns to the core
// and dispatches each one onto a view.View. The external input loop is
// responsible for mapping keystrokes onto these values; this package knows
// nothing about keyboards or terminals.
package command

import "github.com/arbortui/treeview/view"

// Command is one of the nine operations the view exposes externally.
type Command int

const (
	MoveUp Command = iota
	MoveDown
	Collapse
	Expand
	AddChild
	AddSibling
	Remove
	RecordHandle
	GotoRecorded
)

func (c Command) String() string {
	switch c {
	case MoveUp:
		return "MoveUp"
	case MoveDown:
		return "MoveDown"
	case Collapse:
		return "Collapse"
	case Expand:
		return "Expand"
	case AddChild:
		return "AddChild"
	case AddSibling:
		return "AddSibling"
	case Remove:
		return "Remove"
	case RecordHandle:
		return "RecordHandle"
	case GotoRecorded:
		return "GotoRecorded"
	default:
		return "Unknown"
	}
}

// Dispatch applies c to v. It never panics and never returns an error: every
// view operation is already total on its own precondition (spec §7), so an
// inapplicable command is simply a no-op.
func Dispatch(c Command, v *view.View) {
	switch c {
	case MoveUp:
		v.MoveUp()
	case MoveDown:
		v.MoveDown()
	case Collapse:
		v.Collapse()
	case Expand:
		v.Expand()
	case AddChild:
		v.AddChild()
	case AddSibling:
		v.AddSibling()
	case Remove:
		v.Remove()
	case RecordHandle:
		v.RecordHandle()
	case GotoRecorded:
		v.GotoRecorded()
	}
}
