package db

import (
	"errors"
	"fmt"
)

var (
	ErrEntityNotFound = errors.New("entity not found")
	ErrNotVisible     = errors.New("entity is not visible")
	ErrInvalidID      = errors.New("invalid id")
)

// Kind classifies an [OpError].
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindDeleted
	KindPermission
	KindInvalid
)

var kindNames = map[Kind]string{
	KindInternal:   "internal",
	KindNotFound:   "not found",
	KindDeleted:    "deleted",
	KindPermission: "permission",
	KindInvalid:    "invalid",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Entities named in errors.
const (
	entUser    = "user"
	entForum   = "forum"
	entTopic   = "topic"
	entMessage = "message"
	entGame    = "game"
)

// OpError describes a failed store operation.
type OpError struct {
	Op       string
	Kind     Kind
	Entity   string
	EntityID int64
	Input    string
	Err      error
}

func (e *OpError) Error() string {
	msg := e.Op + ": " + e.Entity
	if e.EntityID != 0 {
		msg += fmt.Sprintf(" %d", e.EntityID)
	}
	if e.Input != "" {
		msg += fmt.Sprintf(" %q", e.Input)
	}
	msg += ": " + e.Kind.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// Is makes not-found, deleted and invisible entities match [ErrEntityNotFound],
// so that callers which only care about existence need not inspect the kind.
func (e *OpError) Is(target error) bool {
	if target != ErrEntityNotFound {
		return false
	}
	switch e.Kind {
	case KindNotFound, KindDeleted, KindPermission:
		return true
	}
	return false
}

type opOption func(*OpError)

func withEntityID(id int64) opOption {
	return func(e *OpError) { e.EntityID = id }
}

func withInput(input string) opOption {
	return func(e *OpError) { e.Input = input }
}

func newOpError(op string, kind Kind, entity string, err error, opts ...opOption) *OpError {
	e := &OpError{Op: op, Kind: kind, Entity: entity, Err: err}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// opDetails identifies the subject of a failed query.
type opDetails struct {
	entity   string
	entityID int64
	input    string
}

func notFoundError(op string, entity string, id int64) *OpError {
	return newOpError(op, KindNotFound, entity, ErrEntityNotFound, withEntityID(id))
}

func sqlError(op string, details opDetails, err error) *OpError {
	return newOpError(op, KindInternal, details.entity, err,
		withEntityID(details.entityID), withInput(details.input))
}
