package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mason/internal/adapters/fs"
)

func TestVerifier_VerifyByproducts(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "app.profraw"), []byte("raw"), 0o644))

	v := fs.NewVerifier()
	missing, err := v.VerifyByproducts(root, []string{"app.profraw", "app.profdata"})
	require.NoError(t, err)
	assert.Equal(t, []string{"app.profdata"}, missing)
}

func TestVerifier_AllPresent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "report.txt"), nil, 0o644))

	v := fs.NewVerifier()
	missing, err := v.VerifyByproducts(root, []string{"report.txt"})
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestVerifier_AbsolutePath(t *testing.T) {
	other := t.TempDir()
	abs := filepath.Join(other, "out.bin")
	require.NoError(t, os.WriteFile(abs, nil, 0o644))

	v := fs.NewVerifier()
	missing, err := v.VerifyByproducts(t.TempDir(), []string{abs})
	require.NoError(t, err)
	assert.Empty(t, missing)
}
