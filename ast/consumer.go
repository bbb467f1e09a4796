// File: consumer.go
// Title: Goldenscript Argument Consumer
// Description: Implements order-independent, one-shot argument extraction over
//              a command's parsed argument list. The consumer operates on an
//              owned working copy and never mutates the original command.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial argument consumer implementation

package ast

import (
	"fmt"
	"strconv"
)

// ArgumentConsumer provides destructive, order-independent extraction over a
// snapshot of a command's arguments. Obtain one via Command.ConsumeArgs. The
// original Command is never modified.
type ArgumentConsumer struct {
	args []Argument
}

// ConsumeArgs returns a new ArgumentConsumer seeded with a copy of the
// command's arguments, in source order.
func (c *Command) ConsumeArgs() *ArgumentConsumer {
	args := make([]Argument, len(c.Args))
	copy(args, c.Args)
	return &ArgumentConsumer{args: args}
}

// Len returns the number of remaining arguments.
func (ac *ArgumentConsumer) Len() int {
	return len(ac.args)
}

// Next removes and returns the next remaining argument, or nil if exhausted.
func (ac *ArgumentConsumer) Next() *Argument {
	if len(ac.args) == 0 {
		return nil
	}
	arg := ac.args[0]
	ac.args = ac.args[1:]
	return &arg
}

// NextKey removes and returns the next key/value argument, or nil if none
// remain. Positional arguments before it are left in place.
func (ac *ArgumentConsumer) NextKey() *Argument {
	for i, arg := range ac.args {
		if arg.HasKey() {
			ac.remove(i)
			return &arg
		}
	}
	return nil
}

// NextPos removes and returns the next positional argument, or nil if none
// remain. Key/value arguments before it are left in place.
func (ac *ArgumentConsumer) NextPos() *Argument {
	for i, arg := range ac.args {
		if !arg.HasKey() {
			ac.remove(i)
			return &arg
		}
	}
	return nil
}

// Lookup returns the last argument with the given key and removes all
// arguments with that key, silently collapsing duplicates to the last value.
// Returns nil if the key is not present.
func (ac *ArgumentConsumer) Lookup(key string) *Argument {
	var found *Argument
	for i := len(ac.args) - 1; i >= 0; i-- {
		if ac.args[i].Key == key {
			if found == nil {
				arg := ac.args[i]
				found = &arg
			}
			ac.remove(i)
		}
	}
	return found
}

// Rest removes and returns all remaining arguments, in source order.
func (ac *ArgumentConsumer) Rest() []Argument {
	rest := ac.args
	ac.args = nil
	return rest
}

// RestPos removes and returns all remaining positional arguments, in source
// order. Key/value arguments are left in place.
func (ac *ArgumentConsumer) RestPos() []Argument {
	return ac.drain(func(arg Argument) bool { return !arg.HasKey() })
}

// RestKey removes and returns all remaining key/value arguments, in source
// order. Positional arguments are left in place.
func (ac *ArgumentConsumer) RestKey() []Argument {
	return ac.drain(func(arg Argument) bool { return arg.HasKey() })
}

// RejectRest returns an error naming the first remaining argument, if any.
// It does not consume anything; runners call it after extracting the
// arguments they understand.
func (ac *ArgumentConsumer) RejectRest() error {
	if len(ac.args) == 0 {
		return nil
	}
	arg := ac.args[0]
	if arg.HasKey() {
		return fmt.Errorf("unexpected argument '%s'", arg.Key)
	}
	return fmt.Errorf("unexpected argument '%s'", arg.Value)
}

// remove deletes the argument at index i, preserving order.
func (ac *ArgumentConsumer) remove(i int) {
	ac.args = append(ac.args[:i], ac.args[i+1:]...)
}

// drain removes and returns all arguments matching the predicate, preserving
// the order of both the returned and the remaining arguments.
func (ac *ArgumentConsumer) drain(match func(Argument) bool) []Argument {
	var drained, kept []Argument
	for _, arg := range ac.args {
		if match(arg) {
			drained = append(drained, arg)
		} else {
			kept = append(kept, arg)
		}
	}
	ac.args = kept
	return drained
}

// Parseable enumerates the value types ParseValue can convert to.
type Parseable interface {
	string | bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// ParseValue converts an argument's value to T using strconv. Failures are
// wrapped as "invalid argument '<value>': <cause>" so runners can return them
// directly as command errors.
func ParseValue[T Parseable](arg Argument) (T, error) {
	var out T
	if err := parseInto(arg.Value, &out); err != nil {
		return out, fmt.Errorf("invalid argument '%s': %w", arg.Value, err)
	}
	return out, nil
}

// LookupParse looks up the last argument with the given key, parses its value
// as T, and removes all arguments with that key. The boolean result reports
// whether the key was present. If parsing fails nothing is removed, so the
// argument still shows up in RejectRest.
func LookupParse[T Parseable](ac *ArgumentConsumer, key string) (T, bool, error) {
	var zero T

	last := -1
	for i := len(ac.args) - 1; i >= 0; i-- {
		if ac.args[i].Key == key {
			last = i
			break
		}
	}
	if last < 0 {
		return zero, false, nil
	}

	value, err := ParseValue[T](ac.args[last])
	if err != nil {
		return zero, false, err
	}
	ac.Lookup(key)
	return value, true, nil
}

// parseInto converts s into the pointed-to type. The type set is closed by
// the Parseable constraint, so the default branch is unreachable.
func parseInto(s string, out any) error {
	switch p := out.(type) {
	case *string:
		*p = s
	case *bool:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return unwrapNumError(err)
		}
		*p = v
	case *int:
		v, err := strconv.ParseInt(s, 10, 0)
		if err != nil {
			return unwrapNumError(err)
		}
		*p = int(v)
	case *int8:
		v, err := strconv.ParseInt(s, 10, 8)
		if err != nil {
			return unwrapNumError(err)
		}
		*p = int8(v)
	case *int16:
		v, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return unwrapNumError(err)
		}
		*p = int16(v)
	case *int32:
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return unwrapNumError(err)
		}
		*p = int32(v)
	case *int64:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return unwrapNumError(err)
		}
		*p = v
	case *uint:
		v, err := strconv.ParseUint(s, 10, 0)
		if err != nil {
			return unwrapNumError(err)
		}
		*p = uint(v)
	case *uint8:
		v, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return unwrapNumError(err)
		}
		*p = uint8(v)
	case *uint16:
		v, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return unwrapNumError(err)
		}
		*p = uint16(v)
	case *uint32:
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return unwrapNumError(err)
		}
		*p = uint32(v)
	case *uint64:
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return unwrapNumError(err)
		}
		*p = v
	case *float32:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return unwrapNumError(err)
		}
		*p = float32(v)
	case *float64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return unwrapNumError(err)
		}
		*p = v
	default:
		return fmt.Errorf("unsupported target type %T", out)
	}
	return nil
}

// unwrapNumError strips the strconv.NumError wrapper so error messages read
// "value out of range" rather than repeating the quoted input.
func unwrapNumError(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}
