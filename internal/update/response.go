package update

import "github.com/Flarenzy/rdap-registry/internal/validation"

// Response is the outcome of one pipeline run: the handle plus, on failure,
// the single error reported to the caller.
type Response struct {
	Handle string
	Err    *validation.Error
}

func SuccessResponse(handle string) Response {
	return Response{Handle: handle}
}

func ErrorResponse(handle string, err validation.Error) Response {
	return Response{Handle: handle, Err: &err}
}

func (r Response) Success() bool {
	return r.Err == nil
}
