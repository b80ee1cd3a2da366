package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCollectFiltersAndSorts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "z.tsx", "")
	writeFile(t, root, "app/page.tsx", "")
	writeFile(t, root, "app/styles.css", "")
	writeFile(t, root, "lib/util.ts", "")
	writeFile(t, root, "node_modules/pkg/index.ts", "")
	writeFile(t, root, "app/.next/cache.js", "")
	writeFile(t, root, "builder/keep.ts", "")

	files, err := Collect(root, []string{".ts", ".tsx"}, []string{"node_modules", ".next", "build"})
	require.NoError(t, err)

	want := []string{
		filepath.Join(root, "app", "page.tsx"),
		filepath.Join(root, "builder", "keep.ts"),
		filepath.Join(root, "lib", "util.ts"),
		filepath.Join(root, "z.tsx"),
	}
	assert.Equal(t, want, files)
}

func TestCollectIsIdempotent(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{"c.ts", "a/b.ts", "a.ts", "b/a.ts"} {
		writeFile(t, root, rel, "")
	}

	first, err := Collect(root, []string{".ts"}, nil)
	require.NoError(t, err)
	second, err := Collect(root, []string{".ts", ".ts"}, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.IsNonDecreasing(t, first)
}

func TestCollectMissingRoot(t *testing.T) {
	files, err := Collect(filepath.Join(t.TempDir(), "missing"), []string{".ts"}, nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestCollectMalformedRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "plain.txt", "not a directory")

	for _, bad := range []string{
		filepath.Join(root, "plain.txt", "sub"),
		"bad\x00root",
	} {
		files, err := Collect(bad, []string{".ts"}, nil)
		require.NoError(t, err, bad)
		assert.Empty(t, files, bad)
	}
}

func TestCollectFollowsFileSymlinks(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "real/button.tsx", "")
	link := filepath.Join(root, "app", "button.tsx")
	require.NoError(t, os.MkdirAll(filepath.Dir(link), 0o755))
	if err := os.Symlink(filepath.Join(root, "real", "button.tsx"), link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.tsx"), filepath.Join(root, "app", "dangling.tsx")))

	files, err := Collect(root, []string{".tsx"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{link, filepath.Join(root, "real", "button.tsx")}, files)
}
