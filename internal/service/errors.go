package service

import (
	"errors"
	"fmt"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/repository"
)

// ErrNotFound marks a record that does not exist or is not owned by the caller.
var ErrNotFound = repository.ErrNotFound

var (
	ErrPhotosDisabled  = errors.New("photo storage is not configured")
	ErrArchiveDisabled = errors.New("report archive is not configured")
)

type Op string

const (
	OpLoad   Op = "load"
	OpSave   Op = "save"
	OpDelete Op = "delete"
	OpExport Op = "export"
)

// OpError wraps a collaborator failure with the operation and entity it hit.
type OpError struct {
	Op     Op
	Entity string
	Err    error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// UserMessage is safe to show to the person who triggered the operation.
func (e *OpError) UserMessage() string {
	if e.Op == OpExport {
		return "Failed to export report"
	}
	return fmt.Sprintf("Failed to %s %s", e.Op, e.Entity)
}

func wrap(op Op, entity string, err error) error {
	if err == nil {
		return nil
	}
	var opErr *OpError
	if errors.As(err, &opErr) {
		return err
	}
	return &OpError{Op: op, Entity: entity, Err: err}
}

// retag reports a parent lookup failure against the child entity.
func retag(entity string, err error) error {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return &OpError{Op: opErr.Op, Entity: entity, Err: opErr.Err}
	}
	return wrap(OpLoad, entity, err)
}
