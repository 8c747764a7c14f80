// Test Type: Unit Test
// Description: Tests for the hasher package - content digests and hashed filename derivation

package hasher_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hashbust/hashbust/pkg/hasher"
)

func TestContentHash(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{
			name:     "css_content",
			data:     []byte("body { color: red; }"),
			expected: "f2b804d3e3bd61d76922a667f90e66d8",
		},
		{
			name:     "empty_content",
			data:     []byte{},
			expected: "d41d8cd98f00b204e9800998ecf8427e",
		},
		{
			name:     "binary_content",
			data:     []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00, 0x01, 0x02, 0xff, 0xfe},
			expected: "c836e78db12f1842dac1b4ec8e572f8f",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hasher.ContentHash(tt.data))
		})
	}
}

func TestContentHash_Deterministic(t *testing.T) {
	data := []byte("hello world")
	first := hasher.ContentHash(data)
	second := hasher.ContentHash(data)

	assert.Equal(t, first, second)
	assert.Equal(t, "5eb63bbbe01eeed093cb22bb8f5acdc3", first)
	assert.Len(t, first, 32)
}

func TestHashedName(t *testing.T) {
	tests := []struct {
		name         string
		data         []byte
		originalName string
		expected     string
	}{
		{
			name:         "simple_extension",
			data:         []byte("body { color: red; }"),
			originalName: "styles.css",
			expected:     "styles.f2b804d3e3bd61d76922a667f90e66d8.css",
		},
		{
			name:         "multiple_dots_split_at_last",
			data:         []byte("body { color: red; }"),
			originalName: "styles.min.css",
			expected:     "styles.min.f2b804d3e3bd61d76922a667f90e66d8.css",
		},
		{
			name:         "no_extension",
			data:         []byte("hello world"),
			originalName: "LICENSE",
			expected:     "LICENSE.5eb63bbbe01eeed093cb22bb8f5acdc3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hasher.HashedName(tt.data, tt.originalName))
		})
	}
}

func TestHashedName_Shape(t *testing.T) {
	name := hasher.HashedName([]byte("body { color: red; }"), "styles.css")

	parts := strings.Split(name, ".")
	assert.Len(t, parts, 3)
	assert.Equal(t, "styles", parts[0])
	assert.Equal(t, "css", parts[2])
	assert.Regexp(t, "^[0-9a-f]{32}$", parts[1])
}

func TestHashedName_DifferentContentDifferentName(t *testing.T) {
	a := hasher.HashedName([]byte("body { color: red; }"), "styles.css")
	b := hasher.HashedName([]byte("body { color: blue; }"), "styles.css")

	assert.NotEqual(t, a, b)
}
