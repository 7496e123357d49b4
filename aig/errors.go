// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package aig

import "fmt"

// Kind classifies the errors raised by this package.
type Kind int

const (
	InvalidArgument Kind = iota
	LogicError
	OutOfRange
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case LogicError:
		return "LogicError"
	case OutOfRange:
		return "OutOfRange"
	default:
		return "UnknownKind"
	}
}

// Error is the concrete error type returned by this package's operations.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func (m *Mgr) Error() string {
	if m.err == nil {
		return ""
	}
	return m.err.Error()
}

func (m *Mgr) Errored() bool {
	return m.err != nil
}

func (m *Mgr) seterror(kind Kind, format string, a ...interface{}) {
	e := &Error{Kind: kind, msg: fmt.Sprintf(format, a...)}
	if m.err != nil {
		e = &Error{Kind: kind, msg: fmt.Sprintf("%s; %s", e.msg, m.err.Error())}
	}
	m.err = e
}
