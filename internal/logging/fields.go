package logging

import "github.com/felixgeelhaar/bolt/v3"

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// With applies fields to e in order.
func With(e *bolt.Event, fields ...Field) *bolt.Event {
	for _, f := range fields {
		e = f(e)
	}
	return e
}

// SessionID adds a session id field.
func SessionID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("session_id", id)
	}
}

// Command adds the raw input line.
func Command(line string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("command", line)
	}
}

// Position adds x and y fields.
func Position(x, y int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("x", x).Int("y", y)
	}
}

// Facing adds a facing field.
func Facing(f string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("facing", f)
	}
}

// Table adds the table dimensions.
func Table(width, height int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("width", width).Int("height", height)
	}
}

// Reason explains why a command had no effect.
func Reason(reason string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("reason", reason)
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}
