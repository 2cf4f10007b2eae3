package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndRemove(t *testing.T) {
	base := t.TempDir()
	st := NewLocalStore(base)

	uri, err := st.Save("resume", "abc", ".pdf", []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "resume", "abc.pdf"), uri)

	data, err := os.ReadFile(uri)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data))

	require.NoError(t, st.Remove(uri))
	require.NoError(t, st.Remove(uri))
	_, err = os.Stat(uri)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveRejectsTraversal(t *testing.T) {
	st := NewLocalStore(t.TempDir())
	_, err := st.Save("..", "x", ".pdf", nil)
	assert.Error(t, err)
	_, err = st.Save("video", "../x", ".mp4", nil)
	assert.Error(t, err)
}
