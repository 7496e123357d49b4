// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"fmt"
	"log"
)

// Kind classifies the errors raised by this package: InvalidArgument,
// LogicError and OutOfRange, the three error kinds shared by the aig, bdd
// and sop packages of this module.
type Kind int

const (
	// InvalidArgument flags a mixed-manager operand, a malformed truth-table
	// string, an out-of-range variable id, or any other misuse a caller
	// could have checked for in advance.
	InvalidArgument Kind = iota
	// LogicError flags an invariant violated by the manager's own internal
	// bookkeeping; it indicates a bug in this package, not caller misuse.
	LogicError
	// OutOfRange flags indexing past variable_num or a similar bound.
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

func newError(kind Kind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, a...)}
}

// Error returns the error status of the manager, following the sticky-error
// idiom; it returns an empty string if there has been no error so far.
func (b *Mgr) Error() string {
	if b.err == nil {
		return ""
	}
	return b.err.Error()
}

// Errored returns true if an operation on this manager has failed.
func (b *Mgr) Errored() bool {
	return b.err != nil
}

func (b *Mgr) seterror(kind Kind, format string, a ...interface{}) {
	e := newError(kind, format, a...)
	if b.err != nil {
		e = newError(kind, "%s; %s", e.msg, b.err.Error())
	}
	b.err = e
	if _DEBUG {
		log.Println(b.err)
	}
}
