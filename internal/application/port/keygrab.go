package port

import (
	"context"
	"errors"
)

//go:generate mockgen -source=keygrab.go -destination=mocks/mock_keygrab.go -package=mocks

var (
	// ErrAcceleratorTaken is returned when the combination is already grabbed,
	// by this process or by another client of the session.
	ErrAcceleratorTaken = errors.New("accelerator already grabbed")
	// ErrInvalidAccelerator is returned for strings that do not parse.
	ErrInvalidAccelerator = errors.New("invalid accelerator")
)

// ActionHandle identifies a granted grab. Zero is never a valid handle.
type ActionHandle uint32

// ActionMode controls in which input contexts a granted handle may fire.
type ActionMode int

const (
	// ActionModeNone blocks the handle everywhere.
	ActionModeNone ActionMode = iota
	// ActionModeNormal lets the handle fire only while a regular window is focused.
	ActionModeNormal
	// ActionModeAll lets the handle fire in every input context.
	ActionModeAll
)

// KeyGrabber is the session-wide accelerator grab facility.
type KeyGrabber interface {
	// Grab reserves the accelerator and returns its handle.
	Grab(ctx context.Context, accelerator string) (ActionHandle, error)
	// Ungrab releases a previously granted handle.
	Ungrab(ctx context.Context, handle ActionHandle) error
	// BindingName returns the allow-list name for a handle.
	BindingName(handle ActionHandle) string
	// Allow sets the input contexts in which the named binding may fire.
	Allow(ctx context.Context, name string, mode ActionMode) error
	// Subscribe registers fn for activation events and returns the unsubscribe func.
	Subscribe(fn func(handle ActionHandle)) (unsubscribe func())
}
