// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, classification and user-facing detail

package errors_test

import (
	stderrors "errors"
	"io/fs"
	"os"
	"syscall"
	"testing"

	"github.com/arthur-debert/edir/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "format_error",
			code:    errors.ErrFormat,
			message: "line 3 invalid",
			wantStr: "[FORMAT] line 3 invalid",
		},
		{
			name:    "not_empty_error",
			code:    errors.ErrNotEmpty,
			message: "Directory not empty",
			wantStr: "[NOT_EMPTY] Directory not empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrRange, "line %d number %d out of range", 4, 9)
	assert.Equal(t, "line 4 number 9 out of range", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		assert.Equal(t, errors.ErrInternal, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[INTERNAL] internal error: base error", err.Error())
		assert.True(t, stderrors.Is(err, baseErr))
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrFormat, "bad line").
		WithDetail("line", 3).
		WithDetail("raw", "x  foo")

	assert.Equal(t, 3, err.Details["line"])
	assert.Equal(t, "x  foo", err.Details["raw"])
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrRange, "error 1")
	err2 := errors.New(errors.ErrRange, "error 2")
	err3 := errors.New(errors.ErrFormat, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(err1, err2))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrEditor, "vim failed"), errors.ErrEditor, true},
		{"different_code", errors.New(errors.ErrEditor, "vim failed"), errors.ErrFormat, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrPermission, "denied"), errors.ErrPermission, true},
		{"plain_error", stderrors.New("standard error"), errors.ErrBackend, false},
		{"nil_error", nil, errors.ErrBackend, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrStaging, errors.GetErrorCode(errors.New(errors.ErrStaging, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestIsFatal(t *testing.T) {
	fatal := []errors.ErrorCode{
		errors.ErrFormat, errors.ErrRange, errors.ErrSourceUnreadable,
		errors.ErrEditor, errors.ErrConfigInvalid, errors.ErrNoRepository,
	}
	for _, code := range fatal {
		assert.True(t, errors.IsFatal(errors.New(code, "x")), code)
	}

	perEntry := []errors.ErrorCode{
		errors.ErrPermission, errors.ErrNotEmpty, errors.ErrBackend,
		errors.ErrConcurrentModification, errors.ErrStaging,
	}
	for _, code := range perEntry {
		assert.False(t, errors.IsFatal(errors.New(code, "x")), code)
	}
	assert.False(t, errors.IsFatal(stderrors.New("x")))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code errors.ErrorCode
	}{
		{"permission", &os.PathError{Op: "rename", Path: "a", Err: fs.ErrPermission}, errors.ErrPermission},
		{"vanished", &os.LinkError{Op: "rename", Old: "a", New: "b", Err: syscall.ENOENT}, errors.ErrConcurrentModification},
		{"not_empty", &os.PathError{Op: "remove", Path: "d", Err: syscall.ENOTEMPTY}, errors.ErrNotEmpty},
		{"other", stderrors.New("disk on fire"), errors.ErrBackend},
		{"already_coded", errors.New(errors.ErrStaging, "mkdir"), errors.ErrStaging},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errors.Classify(tt.err, "op")
			assert.Equal(t, tt.code, errors.GetErrorCode(got))
		})
	}

	assert.Nil(t, errors.Classify(nil, "op"))
}

func TestDetail(t *testing.T) {
	linkErr := &os.LinkError{Op: "rename", Old: "a", New: ".tmp-edir/b", Err: syscall.EACCES}

	assert.Equal(t, "permission denied", errors.Detail(errors.Classify(linkErr, "rename")))
	assert.Equal(t, "Directory not empty", errors.Detail(errors.New(errors.ErrNotEmpty, "Directory not empty")))
	assert.Equal(t, "git error: fatal", errors.Detail(errors.New(errors.ErrBackend, "git error: fatal")))
	assert.Equal(t, "boom", errors.Detail(stderrors.New("boom")))
	assert.Equal(t, "", errors.Detail(nil))
}

func TestUserMessage(t *testing.T) {
	pathErr := &os.PathError{Op: "open", Path: "/x/config.toml", Err: fs.ErrNotExist}

	assert.Equal(t, "line 3: missing path", errors.UserMessage(errors.New(errors.ErrFormat, "line 3: missing path")))
	assert.Equal(t, "config file /x/config.toml not found: file does not exist",
		errors.UserMessage(errors.Wrapf(pathErr, errors.ErrConfigLoad, "config file %s not found", "/x/config.toml")))
	assert.Equal(t, "unknown flag: --bogus", errors.UserMessage(stderrors.New("unknown flag: --bogus")))
	assert.Equal(t, "", errors.UserMessage(nil))
}
