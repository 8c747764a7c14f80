// Test Type: Unit Test
// Description: Tests that the OS and afero filesystems behave identically through types.FS

package filesystem_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashbust/hashbust/pkg/filesystem"
	"github.com/hashbust/hashbust/pkg/types"
)

func TestFS_ReadWriteRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		fs   func(t *testing.T) (types.FS, string)
	}{
		{
			name: "os",
			fs: func(t *testing.T) (types.FS, string) {
				return filesystem.NewOS(), t.TempDir()
			},
		},
		{
			name: "afero_memmap",
			fs: func(t *testing.T) (types.FS, string) {
				return filesystem.NewAferoFS(afero.NewMemMapFs()), "root"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, root := tt.fs(t)

			dir := filepath.Join(root, "a", "b")
			require.NoError(t, fs.MkdirAll(dir, 0755))

			path := filepath.Join(dir, "file.bin")
			content := []byte{0x00, 0x01, 0xff, 0xfe}
			require.NoError(t, fs.WriteFile(path, content, 0644))

			read, err := fs.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, content, read)

			entries, err := fs.ReadDir(dir)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, "file.bin", entries[0].Name())
			assert.False(t, entries[0].IsDir())
		})
	}
}

func TestFS_ReadFileOnDirectory(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.MkdirAll("somedir", 0755))

	_, err := fs.ReadFile("somedir")
	assert.Error(t, err)
}
