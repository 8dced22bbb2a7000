package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates client specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to create a resource that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeInternal indicates internal system error
	CodeInternal Code = "internal"

	// CodeConflict indicates a concurrent writer won the race for a record
	CodeConflict Code = "conflict"

	// CodeValidation indicates a validation error
	CodeValidation Code = "validation"
)

// Battle pre-condition codes. None of these are retryable: the same state and
// action will always produce the same error.
const (
	CodeNotYourTurn         Code = "not_your_turn"
	CodeBattleNotActive     Code = "battle_not_active"
	CodeInsufficientEnergy  Code = "insufficient_energy"
	CodeAbilityOnCooldown   Code = "ability_on_cooldown"
	CodeAbilityIndexInvalid Code = "ability_index_invalid"
	CodeItemUseLimitReached Code = "item_use_limit_reached"
	CodeHPAlreadyFull       Code = "hp_already_full"
	CodeInvalidItem         Code = "invalid_item"
	CodeUnknownAction       Code = "unknown_action"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// If it's already our error type, preserve the code
	var arenaErr *Error
	if errors.As(err, &arenaErr) {
		return &Error{
			Code:    arenaErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(arenaErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Conflictf creates a formatted conflict error
func Conflictf(format string, args ...any) *Error {
	return Newf(CodeConflict, format, args...)
}

// Validationf creates a formatted validation error
func Validationf(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

// NotYourTurn is returned when a side acts out of turn
func NotYourTurn(side string) *Error {
	return Newf(CodeNotYourTurn, "it is not %s's turn", side).WithMeta("side", side)
}

// BattleNotActive is returned when the room does not accept actions
func BattleNotActive(status string) *Error {
	return Newf(CodeBattleNotActive, "battle is not active (status %s)", status).WithMeta("status", status)
}

// InsufficientEnergy is returned when an action costs more energy than available
func InsufficientEnergy(required, available int) *Error {
	return Newf(CodeInsufficientEnergy, "not enough energy: need %d, have %d", required, available).
		WithMeta("required", required).
		WithMeta("available", available)
}

// AbilityOnCooldown carries the remaining turns in Meta["remaining"]
func AbilityOnCooldown(ability string, remaining int) *Error {
	return Newf(CodeAbilityOnCooldown, "%s is on cooldown for %d more turn(s)", ability, remaining).
		WithMeta("ability", ability).
		WithMeta("remaining", remaining)
}

// AbilityIndexInvalid is returned for an index outside the equipped abilities
func AbilityIndexInvalid(index int) *Error {
	return Newf(CodeAbilityIndexInvalid, "no ability equipped at index %d", index).WithMeta("index", index)
}

// ItemUseLimitReached is returned once a side has used all of its items
func ItemUseLimitReached(limit int) *Error {
	return Newf(CodeItemUseLimitReached, "item limit of %d per battle reached", limit).WithMeta("limit", limit)
}

// HPAlreadyFull is returned when a healing item would have no effect
func HPAlreadyFull() *Error {
	return New(CodeHPAlreadyFull, "hp is already full")
}

// InvalidItem is returned for items that are not usable healing consumables
func InvalidItem(item string) *Error {
	return Newf(CodeInvalidItem, "%q is not a usable healing item", item).WithMeta("item", item)
}

// UnknownAction is returned for action kinds the resolver does not handle
func UnknownAction(kind string) *Error {
	return Newf(CodeUnknownAction, "unknown action %q", kind).WithMeta("action", kind)
}

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var arenaErr *Error
	if errors.As(err, &arenaErr) {
		return arenaErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsConflict checks if the error is a conflict error
func IsConflict(err error) bool {
	return Is(err, CodeConflict)
}

// IsPrecondition reports whether err is one of the battle pre-condition errors.
func IsPrecondition(err error) bool {
	switch GetCode(err) {
	case CodeNotYourTurn, CodeBattleNotActive, CodeInsufficientEnergy,
		CodeAbilityOnCooldown, CodeAbilityIndexInvalid, CodeItemUseLimitReached,
		CodeHPAlreadyFull, CodeInvalidItem, CodeUnknownAction:
		return true
	}
	return false
}

// GetCode returns the error code
func GetCode(err error) Code {
	var arenaErr *Error
	if errors.As(err, &arenaErr) {
		return arenaErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var arenaErr *Error
	if errors.As(err, &arenaErr) {
		return arenaErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
