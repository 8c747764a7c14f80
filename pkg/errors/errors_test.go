package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrManifestParse, "manifest is not valid JSON")

	assert.Equal(t, ErrManifestParse, err.Code)
	assert.Equal(t, "[MANIFEST_PARSE] manifest is not valid JSON", err.Error())
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("unexpected end of JSON input")
	err := Wrap(inner, ErrManifestParse, "failed to parse manifest")

	require.NotNil(t, err)
	assert.Equal(t, ErrManifestParse, err.Code)
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "unexpected end of JSON input")
}

func TestWrap_NilError(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrFileRead, "should be nil"))
}

func TestIsErrorCode(t *testing.T) {
	err := Newf(ErrConfigPattern, "invalid pattern %q", "[bad")

	assert.True(t, IsErrorCode(err, ErrConfigPattern))
	assert.False(t, IsErrorCode(err, ErrFileRead))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrConfigPattern))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrFetch, GetErrorCode(New(ErrFetch, "boom")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrFetch, "fetch failed").
		WithDetail("url", "http://example.com/a.css").
		WithDetail("status", 500)

	details := GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "http://example.com/a.css", details["url"])
	assert.Equal(t, 500, details["status"])
}

func TestWrappedErrorChain(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	middle := Wrap(inner, ErrFileWrite, "failed to write hashed file")

	assert.Equal(t, ErrFileWrite, GetErrorCode(middle))
	assert.ErrorIs(t, middle, inner)
}
