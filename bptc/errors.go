package bptc

import "errors"

// ErrorCode classifies errors reported by the codec API.
type ErrorCode uint32

const (
	// Success means no error.
	Success ErrorCode = 0

	// ErrBadParam reports a buffer length or image dimension that does not match the request.
	ErrBadParam ErrorCode = 1

	// ErrBadFlags reports unknown encoder flag bits.
	ErrBadFlags ErrorCode = 2

	// ErrReservedMode reports a block whose mode bits select a reserved or invalid mode.
	ErrReservedMode ErrorCode = 3

	// ErrBitOverrun reports a block whose fields would extend past bit 128.
	ErrBitOverrun ErrorCode = 4

	// ErrBadIndex reports an interpolation index outside the palette of its mode.
	ErrBadIndex ErrorCode = 5

	// ErrBadHeader reports header bits set at positions the mode does not define.
	ErrBadHeader ErrorCode = 6
)

// ErrorString returns the stable name of an error code, or "" for unknown codes.
func ErrorString(code ErrorCode) string {
	switch code {
	case Success:
		return "BPTC_SUCCESS"
	case ErrBadParam:
		return "BPTC_ERR_BAD_PARAM"
	case ErrBadFlags:
		return "BPTC_ERR_BAD_FLAGS"
	case ErrReservedMode:
		return "BPTC_ERR_RESERVED_MODE"
	case ErrBitOverrun:
		return "BPTC_ERR_BIT_OVERRUN"
	case ErrBadIndex:
		return "BPTC_ERR_BAD_INDEX"
	case ErrBadHeader:
		return "BPTC_ERR_BAD_HEADER"
	default:
		return ""
	}
}

// Error is a typed error that carries an ErrorCode.
type Error struct {
	Code ErrorCode
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg != "" {
		return e.Msg
	}
	if s := ErrorString(e.Code); s != "" {
		return "bptc: " + s
	}
	return "bptc: error"
}

// ErrorCodeOf returns the error code carried by err, or Success for nil.
//
// For non-*Error errors it returns ErrBadParam as a conservative fallback.
func ErrorCodeOf(err error) ErrorCode {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrBadParam
}

func newError(code ErrorCode, msg string) error {
	return &Error{Code: code, Msg: msg}
}
