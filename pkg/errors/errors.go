// Package errors provides structured error reporting for the host loop
// and the packages it drives.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindDraw indicates a failure while painting a screen or widget.
	KindDraw
	// KindInput indicates a failure while dispatching an input event.
	KindInput
	// KindSensor indicates a failure reading a hardware provider.
	KindSensor
	// KindTheme indicates a palette load or parse failure.
	KindTheme
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindDraw:
		return "draw"
	case KindInput:
		return "input"
	case KindSensor:
		return "sensor"
	case KindTheme:
		return "theme"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// HostError represents a structured error raised while running a screen.
type HostError struct {
	// Op is the operation that failed (e.g., "host.Loop.tick").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Screen is the active screen's name, if applicable.
	Screen string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *HostError) Error() string {
	if e.Screen != "" {
		return fmt.Sprintf("%s [%s] screen=%s: %v", e.Op, e.Kind, e.Screen, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *HostError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "host.Loop.dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ThemeError represents a failure to load or parse a palette.
type ThemeError struct {
	// Path is the palette file, empty for in-memory data.
	Path string
	// Field is the offending key, if known.
	Field string
	// Err is the underlying error.
	Err error
}

func (e *ThemeError) Error() string {
	switch {
	case e.Path != "" && e.Field != "":
		return fmt.Sprintf("palette %s: field %s: %v", e.Path, e.Field, e.Err)
	case e.Path != "":
		return fmt.Sprintf("palette %s: %v", e.Path, e.Err)
	case e.Field != "":
		return fmt.Sprintf("palette field %s: %v", e.Field, e.Err)
	default:
		return fmt.Sprintf("palette: %v", e.Err)
	}
}

func (e *ThemeError) Unwrap() error {
	return e.Err
}

// Handler receives errors reported by the host loop.
type Handler interface {
	// HandleError is called when an error occurs.
	HandleError(err *HostError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
