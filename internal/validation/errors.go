package validation

import (
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInvalidField Kind = iota + 1
	KindInvalidAddress
	KindInvalidAddressFamily
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindInvalidField:
		return "invalid_field"
	case KindInvalidAddress:
		return "invalid_address"
	case KindInvalidAddressFamily:
		return "invalid_address_family"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

const (
	CodeEmpty               = 4001
	CodeMaxLength           = 4002
	CodeOutOfRange          = 4003
	CodeInvalidIP           = 4004
	CodeInvalidIPVersion    = 4005
	CodeInconsistentAddress = 4006
	CodeNotFound            = 4041
	CodeConflict            = 4091
)

// Error is a recoverable, user-facing failure of a mutating request.
type Error struct {
	Kind    Kind
	Code    int
	Status  int
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Kind, e.Code, e.Message)
}

func EmptyField(field string) Error {
	return Error{
		Kind:    KindInvalidField,
		Code:    CodeEmpty,
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("property can't be empty: [%s]", field),
	}
}

func FieldTooLong(field string, maxLength int) Error {
	return Error{
		Kind:    KindInvalidField,
		Code:    CodeMaxLength,
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("property [%s] exceeds max length %d", field, maxLength),
	}
}

func FieldOutOfRange(field string, lower, upper any) Error {
	return Error{
		Kind:    KindInvalidField,
		Code:    CodeOutOfRange,
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("property [%s] must be between %v and %v", field, lower, upper),
	}
}

func InvalidIP(field string) Error {
	return Error{
		Kind:    KindInvalidAddress,
		Code:    CodeInvalidIP,
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("property [%s] is not a valid ip address", field),
	}
}

func InconsistentAddress(message string) Error {
	return Error{
		Kind:    KindInvalidAddress,
		Code:    CodeInconsistentAddress,
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

func InvalidIPVersion(field string) Error {
	return Error{
		Kind:    KindInvalidAddressFamily,
		Code:    CodeInvalidIPVersion,
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("property [%s] must be v4 or v6", field),
	}
}

func HandleNotFound(handle string) Error {
	return Error{
		Kind:    KindNotFound,
		Code:    CodeNotFound,
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("object not found for handle [%s]", handle),
	}
}

func HandleConflict(handle string) Error {
	return Error{
		Kind:    KindConflict,
		Code:    CodeConflict,
		Status:  http.StatusConflict,
		Message: fmt.Sprintf("handle already exists: [%s]", handle),
	}
}
