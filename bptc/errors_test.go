package bptc_test

import (
	"errors"
	"testing"

	"github.com/am-sokolov/go-bptc/bptc"
)

func TestErrorString_StableNames(t *testing.T) {
	cases := []struct {
		code bptc.ErrorCode
		want string
	}{
		{bptc.Success, "BPTC_SUCCESS"},
		{bptc.ErrBadParam, "BPTC_ERR_BAD_PARAM"},
		{bptc.ErrBadFlags, "BPTC_ERR_BAD_FLAGS"},
		{bptc.ErrReservedMode, "BPTC_ERR_RESERVED_MODE"},
		{bptc.ErrBitOverrun, "BPTC_ERR_BIT_OVERRUN"},
		{bptc.ErrBadIndex, "BPTC_ERR_BAD_INDEX"},
		{bptc.ErrBadHeader, "BPTC_ERR_BAD_HEADER"},
	}

	for _, c := range cases {
		if got := bptc.ErrorString(c.code); got != c.want {
			t.Fatalf("ErrorString(%d): got %q want %q", uint32(c.code), got, c.want)
		}
	}

	if got := bptc.ErrorString(bptc.ErrorCode(0xDEADBEEF)); got != "" {
		t.Fatalf("ErrorString(unknown): got %q want %q", got, "")
	}
}

func TestErrorCodeOf(t *testing.T) {
	if got := bptc.ErrorCodeOf(nil); got != bptc.Success {
		t.Fatalf("ErrorCodeOf(nil): got %v want %v", got, bptc.Success)
	}

	if _, err := bptc.EncodeBC7Image(make([]byte, 4), 1, 1, bptc.Flags(1<<7)); err == nil {
		t.Fatalf("EncodeBC7Image: got nil error, want error")
	} else if got := bptc.ErrorCodeOf(err); got != bptc.ErrBadFlags {
		t.Fatalf("ErrorCodeOf(EncodeBC7Image bad flags): got %v want %v", got, bptc.ErrBadFlags)
	}

	if got := bptc.ErrorCodeOf(errors.New("some other error")); got != bptc.ErrBadParam {
		t.Fatalf("ErrorCodeOf(non-bptc): got %v want %v", got, bptc.ErrBadParam)
	}

	var e *bptc.Error
	if e.Error() != "" {
		t.Fatalf("nil *Error: got %q want empty", e.Error())
	}
	if got := (&bptc.Error{Code: bptc.ErrBadIndex}).Error(); got != "bptc: BPTC_ERR_BAD_INDEX" {
		t.Fatalf("Error() without message: got %q", got)
	}
}
