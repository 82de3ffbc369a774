package history

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPath = "/home/user/.cache/szmer/last_notification"

func TestLast_MissingFile(t *testing.T) {
	_, ok, err := New(afero.NewMemMapFs(), testPath).Last()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecord_AppendsAndLastReturnsNewest(t *testing.T) {
	fs := afero.NewMemMapFs()
	log := New(fs, testPath)

	require.NoError(t, log.Record(time.Unix(1700000000, 0)))
	require.NoError(t, log.Record(time.Unix(1700001500, 0)))

	data, err := afero.ReadFile(fs, testPath)
	require.NoError(t, err)
	assert.Equal(t, "1700000000\n1700001500\n", string(data))

	last, ok, err := log.Last()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1700001500), last.Unix())
}

func TestLast_IgnoresTrailingBlankLines(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testPath, []byte("100\n200\n\n"), 0644))

	last, ok, err := New(fs, testPath).Last()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(200), last.Unix())
}

func TestLast_EmptyFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testPath, nil, 0644))

	_, ok, err := New(fs, testPath).Last()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLast_CorruptEntry(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testPath, []byte("yesterday\n"), 0644))

	_, _, err := New(fs, testPath).Last()
	assert.Error(t, err)
}
