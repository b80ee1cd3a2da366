package sharedrefs

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"web-audit-kit/internal/logging"
	"web-audit-kit/internal/search"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

type failingSearcher struct{ err error }

func (f failingSearcher) Search(context.Context, string, string) ([]string, error) {
	return nil, f.err
}

func TestGroupOf(t *testing.T) {
	cases := map[string]string{
		"app/[locale]/(main)/search/page.tsx":        "main",
		"app/[locale]/(main)/(support)/faq/page.tsx": "main",
		"app/[locale]/(account)/account/layout.tsx":  "account",
		"app/[locale]/about/page.tsx":                "root",
		"app/[locale]/[username]/page.tsx":           "root",
		"components/layout/header.tsx":               "outside-app",
		"lib/(weird)/x.ts":                           "outside-app",
	}
	for in, want := range cases {
		assert.Equal(t, want, GroupOf(in), in)
	}
}

func TestNeedles(t *testing.T) {
	assert.Equal(t,
		[]string{"components/shared/card", "@/components/shared/card"},
		Needles("components/shared/card.tsx"))
	assert.Equal(t,
		[]string{"components/shared/grid/index", "@/components/shared/grid/index", "components/shared/grid", "@/components/shared/grid"},
		Needles("components/shared/grid/index.ts"))
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "components/shared/card.tsx", "export function Card() {\n  return null\n}\n")
	writeFile(t, root, "components/shared/unused.tsx", "export const Unused = 1\n")
	writeFile(t, root, "app/[locale]/(main)/page.tsx", `import { Card } from "@/components/shared/card"`)
	writeFile(t, root, "app/[locale]/(account)/account/page.tsx", `import { Card } from "@/components/shared/card"`)
	writeFile(t, root, "app/[locale]/about/page.tsx", `import { Card } from "../../../components/shared/card"`)
	writeFile(t, root, "components/layout/footer.tsx", `import { Card } from "@/components/shared/card"`)

	scanner := &Scanner{Root: root, SharedDir: DefaultSharedDir, Searcher: search.NewWalk(), Log: logging.Nop()}
	report, err := scanner.Scan(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Files, 2)
	card := report.Files[0]
	assert.Equal(t, "components/shared/card.tsx", card.File)
	assert.Equal(t, 3, card.Lines)
	assert.Equal(t, []string{"account", "main", "outside-app", "root"}, card.Groups)
	assert.Equal(t, 4, card.References)

	unused := report.Files[1]
	assert.Equal(t, "components/shared/unused.tsx", unused.File)
	assert.Empty(t, unused.Groups)
	assert.Equal(t, 0, unused.References)
}

func TestScanMissingSharedDir(t *testing.T) {
	scanner := &Scanner{Root: t.TempDir(), SharedDir: DefaultSharedDir, Searcher: search.NewWalk(), Log: logging.Nop()}
	report, err := scanner.Scan(context.Background())
	require.NoError(t, err)
	assert.Empty(t, report.Files)
}

func TestScanPropagatesSearchErrors(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "components/shared/card.tsx", "export const Card = 1\n")
	boom := &search.ExitError{Status: 2, Stderr: "boom"}

	scanner := &Scanner{Root: root, SharedDir: DefaultSharedDir, Searcher: failingSearcher{err: boom}, Log: logging.Nop()}
	_, err := scanner.Scan(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestWriteYAML(t *testing.T) {
	report := &Report{SharedDir: DefaultSharedDir, Files: []Entry{{File: "components/shared/card.tsx", Lines: 3, Groups: []string{"main"}, References: 1}}}

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, report))

	var decoded Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *report, decoded)
	assert.Contains(t, buf.String(), "shared_dir: components/shared")
}
