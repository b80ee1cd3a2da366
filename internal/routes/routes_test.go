package routes

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"web-audit-kit/internal/logging"
)

func touch(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("export default function X() { return null }\n"), 0o644))
}

func fixedNow() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestRoutePath(t *testing.T) {
	assert.Equal(t, "/", RoutePath(nil))
	assert.Equal(t, "/", RoutePath([]string{"(main)"}))
	assert.Equal(t, "/faq", RoutePath([]string{"(main)", "(support)", "faq"}))
	assert.Equal(t, "/[username]/[productSlug]", RoutePath([]string{"[username]", "[productSlug]"}))
}

func TestBuild(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "app/[locale]/layout.tsx")
	touch(t, root, "app/[locale]/not-found.tsx")
	touch(t, root, "app/[locale]/page.tsx")
	touch(t, root, "app/[locale]/[username]/page.tsx")
	touch(t, root, "app/[locale]/(main)/layout.tsx")
	touch(t, root, "app/[locale]/(main)/loading.tsx")
	touch(t, root, "app/[locale]/(main)/search/page.tsx")
	touch(t, root, "app/[locale]/(main)/(support)/faq/page.tsx")
	touch(t, root, "app/[locale]/(main)/_components/page.tsx")
	touch(t, root, "app/[locale]/(main)/search/search-page.tsx")
	touch(t, root, "app/[locale]/(auth)/login/page.tsx")

	b := &Builder{Root: root, Now: fixedNow, Log: logging.Nop()}
	inv, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, map[string]bool{"layout": true, "loading": false, "error": false, "not-found": true}, inv.Global)
	assert.Equal(t, []Route{
		{Path: "/", File: "app/[locale]/page.tsx"},
		{Path: "/[username]", File: "app/[locale]/[username]/page.tsx"},
	}, inv.Root)

	mainGroup := inv.Groups["main"]
	assert.True(t, mainGroup.Present)
	assert.Equal(t, "app/[locale]/(main)", mainGroup.Dir)
	assert.True(t, mainGroup.Special["layout"])
	assert.True(t, mainGroup.Special["loading"])
	assert.False(t, mainGroup.Special["error"])
	assert.Equal(t, []Route{
		{Path: "/faq", File: "app/[locale]/(main)/(support)/faq/page.tsx"},
		{Path: "/search", File: "app/[locale]/(main)/search/page.tsx"},
	}, mainGroup.Routes)

	auth := inv.Groups["auth"]
	assert.True(t, auth.Present)
	assert.Equal(t, []Route{{Path: "/login", File: "app/[locale]/(auth)/login/page.tsx"}}, auth.Routes)

	sell := inv.Groups["sell"]
	assert.False(t, sell.Present)
	assert.Empty(t, sell.Routes)
	assert.Len(t, inv.Groups, len(KnownGroups))
}

func TestBuildMissingAppDir(t *testing.T) {
	b := &Builder{Root: t.TempDir(), Now: fixedNow, Log: logging.Nop()}
	inv, err := b.Build()
	require.NoError(t, err)

	assert.Empty(t, inv.Root)
	for _, g := range inv.Groups {
		assert.False(t, g.Present)
	}
}

func TestWriteJSON(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "app/[locale]/(plans)/plans/page.tsx")

	b := &Builder{Root: root, Now: fixedNow, Log: logging.Nop()}
	inv, err := b.Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, inv))

	var decoded Inventory
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.True(t, fixedNow().Equal(decoded.GeneratedAt))
	assert.Equal(t, "/plans", decoded.Groups["plans"].Routes[0].Path)
	assert.Contains(t, buf.String(), `"app_dir": "app/[locale]"`)
}
