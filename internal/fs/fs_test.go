package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplesurance/buildplus/internal/testutils/fstest"
)

func TestFindFileInParentDirsOnRoot(t *testing.T) {
	_, err := FindFileInParentDirs(filepath.FromSlash("/"), "mytestfile-which-must-not-exist-1234")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindFileInParentDirWithExcessivePathSeperator(t *testing.T) {
	tempdir := t.TempDir()

	const wantedFilename = ".buildplus.toml"
	const subdir1 = "subdir1"
	subdir2AbsPath := filepath.Join(tempdir, subdir1, "subdir2")
	wantedFileAbsPath := filepath.Join(tempdir, subdir1, wantedFilename)

	fstest.WriteToFile(t, []byte("hello"), wantedFileAbsPath)
	require.NoError(t, os.MkdirAll(subdir2AbsPath, 0o755))

	foundPath, err := FindFileInParentDirs(subdir2AbsPath+string(os.PathSeparator), wantedFilename)
	require.NoError(t, err)
	assert.Equal(t, wantedFileAbsPath, foundPath)
}

func TestFindFilesInSubDirRespectsDepth(t *testing.T) {
	tempdir := t.TempDir()

	const filename = ".project.toml"

	fstest.WriteToFile(t, nil, filepath.Join(tempdir, filename))
	fstest.WriteToFile(t, nil, filepath.Join(tempdir, "model", filename))
	fstest.WriteToFile(t, nil, filepath.Join(tempdir, "server", "sub", filename))

	res, err := FindFilesInSubDir(tempdir, filename, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{
			filepath.Join(tempdir, filename),
			filepath.Join(tempdir, "model", filename),
		},
		res,
	)

	res, err = FindFilesInSubDir(tempdir, filename, 2)
	require.NoError(t, err)
	assert.Len(t, res, 3)
}

func TestDirsExist(t *testing.T) {
	tempdir := t.TempDir()
	file := filepath.Join(tempdir, "file")
	fstest.WriteToFile(t, nil, file)

	require.NoError(t, DirsExist(tempdir))
	require.ErrorIs(t, DirsExist(filepath.Join(tempdir, "missing")), os.ErrNotExist)
	require.ErrorContains(t, DirsExist(tempdir, file), "is not a directory")
}

func TestFileExists(t *testing.T) {
	tempdir := t.TempDir()
	file := filepath.Join(tempdir, ".project.toml")
	fstest.WriteToFile(t, nil, file)

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(tempdir), "directories are not files")
	assert.False(t, FileExists(filepath.Join(tempdir, "missing")))
}
