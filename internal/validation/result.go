// Package validation accumulates field errors for a single mutating request.
//
// Every check is a method on *Result and does nothing once the result already
// holds an error, so only the first failure of a pass is ever recorded.
package validation

import (
	"context"
	"fmt"
	"net/netip"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Flarenzy/rdap-registry/internal/ipaddr"
)

// Bounds of a persisted timestamp column.
var (
	MinTimestamp = time.Date(1970, time.January, 1, 0, 0, 1, 0, time.UTC)
	MaxTimestamp = time.Date(2038, time.January, 19, 3, 14, 7, 0, time.UTC)
)

type HandleFinder interface {
	FindIDByHandle(ctx context.Context, handle string) (int64, bool, error)
}

type Result struct {
	errs []Error
}

func (r *Result) Add(err Error) {
	r.errs = append(r.errs, err)
}

func (r *Result) HasError() bool {
	return r != nil && len(r.errs) > 0
}

func (r *Result) FirstError() (Error, bool) {
	if !r.HasError() {
		return Error{}, false
	}
	return r.errs[0], true
}

func (r *Result) Errors() []Error {
	out := make([]Error, len(r.errs))
	copy(out, r.errs)
	return out
}

func (r *Result) CheckNotEmpty(value, field string) {
	if r.HasError() {
		return
	}
	if strings.TrimSpace(value) == "" {
		r.Add(EmptyField(field))
	}
}

// CheckMaxLength counts runes, not bytes.
func (r *Result) CheckMaxLength(value string, maxLength int, field string) {
	if r.HasError() {
		return
	}
	if utf8.RuneCountInString(value) > maxLength {
		r.Add(FieldTooLong(field, maxLength))
	}
}

func (r *Result) CheckNotEmptyAndMaxLength(value string, maxLength int, field string) {
	r.CheckNotEmpty(value, field)
	r.CheckMaxLength(value, maxLength, field)
}

func (r *Result) CheckMinMaxInt(value, lower int, upper int64, field string) {
	if r.HasError() {
		return
	}
	if value < lower || int64(value) > upper {
		r.Add(FieldOutOfRange(field, lower, upper))
	}
}

// CheckMinMaxDate skips a zero value; absent dates are not range checked.
func (r *Result) CheckMinMaxDate(value, lower, upper time.Time, field string) {
	if r.HasError() || value.IsZero() {
		return
	}
	if value.Before(lower) || value.After(upper) {
		r.Add(FieldOutOfRange(field, lower.Format(time.RFC3339), upper.Format(time.RFC3339)))
	}
}

func (r *Result) CheckIPAddress(value, field string) {
	if r.HasError() {
		return
	}
	if _, err := netip.ParseAddr(strings.TrimSpace(value)); err != nil {
		r.Add(InvalidIP(field))
	}
}

func (r *Result) CheckIPVersion(value, field string) {
	if r.HasError() {
		return
	}
	if strings.TrimSpace(value) == "" {
		r.Add(EmptyField(field))
		return
	}
	if _, err := ipaddr.ParseFamily(value); err != nil {
		r.Add(InvalidIPVersion(field))
	}
}

// CheckHandleNotExistForCreate records a conflict when handle is already taken.
// The returned error is a lookup failure, not a validation failure.
func (r *Result) CheckHandleNotExistForCreate(ctx context.Context, finder HandleFinder, handle string) error {
	if r.HasError() {
		return nil
	}
	_, found, err := finder.FindIDByHandle(ctx, handle)
	if err != nil {
		return fmt.Errorf("find id by handle %q: %w", handle, err)
	}
	if found {
		r.Add(HandleConflict(handle))
	}
	return nil
}

// CheckHandleExistForUpdate records not-found when handle is unknown.
func (r *Result) CheckHandleExistForUpdate(ctx context.Context, finder HandleFinder, handle string) error {
	if r.HasError() {
		return nil
	}
	_, found, err := finder.FindIDByHandle(ctx, handle)
	if err != nil {
		return fmt.Errorf("find id by handle %q: %w", handle, err)
	}
	if !found {
		r.Add(HandleNotFound(handle))
	}
	return nil
}
