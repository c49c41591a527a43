// Package errs provides the error type used throughout the service.
//
// Errors carry the operation that produced them and a kind that decides how
// the error is presented to an HTTP client. Errors are built with E:
//
//	const op errs.Op = "databaseInfoStorage.GetDatabaseInfo"
//	return errs.E(errs.Database, op, err)
package errs

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Op describes an operation, usually as the receiver type and method name
type Op string

// Kind defines the kind of error this is
type Kind uint8

const (
	Other          Kind = iota // Unclassified error
	Invalid                    // Invalid operation for this type of item
	IO                         // External I/O error such as network failure
	Internal                   // Internal error or inconsistency
	Database                   // Error from the database
	NotExist                   // Item does not exist
	InvalidRequest             // Invalid request
	Validation                 // Input validation error
)

func (k Kind) String() string {
	switch k {
	case Other:
		return "other_error"
	case Invalid:
		return "invalid_operation"
	case IO:
		return "io_error"
	case Internal:
		return "internal_error"
	case Database:
		return "database_error"
	case NotExist:
		return "not_exist"
	case InvalidRequest:
		return "invalid_request"
	case Validation:
		return "validation_error"
	}

	return "unknown_error_kind"
}

type Error struct {
	Op   Op
	Kind Kind
	Err  error
}

// Error returns the message of the innermost error, the op stack is
// available through OpStack.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}

	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds an error value from its arguments. There must be at least one
// argument or E panics. The type of each argument determines its meaning:
//
//	errs.Op     the operation being performed
//	errs.Kind   the class of error
//	string      treated as an error message, wrapped with a stack
//	error       the underlying error
//
// If the underlying error is an *Error and no kind is given, the kind is
// taken from it.
func E(args ...interface{}) error {
	if len(args) == 0 {
		panic("call to errs.E with no arguments")
	}

	e := &Error{}

	for _, arg := range args {
		switch arg := arg.(type) {
		case Op:
			e.Op = arg
		case Kind:
			e.Kind = arg
		case string:
			e.Err = pkgerrors.New(arg)
		case *Error:
			e.Err = arg
		case error:
			e.Err = arg
		default:
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	var prev *Error
	if errors.As(e.Err, &prev) && e.Kind == Other {
		e.Kind = prev.Kind
	}

	return e
}

// KindIs reports whether err is an *Error of the given kind
func KindIs(kind Kind, err error) bool {
	var e *Error
	if errors.As(err, &e) {
		if e.Kind != Other {
			return e.Kind == kind
		}

		if e.Err != nil {
			return KindIs(kind, e.Err)
		}
	}

	return false
}

// OpStack returns the ops of all nested *Error values, outermost first
func OpStack(err error) []string {
	var ops []string

	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			break
		}

		if e.Op != "" {
			ops = append(ops, string(e.Op))
		}

		err = e.Err
	}

	return ops
}
