// Package sharedrefs 공유 컴포넌트를 어떤 라우트 그룹이 참조하는지 조사
package sharedrefs

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"web-audit-kit/internal/config"
	"web-audit-kit/internal/discovery"
	"web-audit-kit/internal/parser"
	"web-audit-kit/internal/search"
)

const (
	// DefaultSharedDir 공유 컴포넌트 디렉토리 (저장소 루트 기준)
	DefaultSharedDir = "components/shared"
	// AliasPrefix tsconfig 경로 별칭
	AliasPrefix = "@/"

	groupRoot       = "root"
	groupOutsideApp = "outside-app"
)

// Entry 공유 파일 하나의 참조 현황
type Entry struct {
	File       string   `yaml:"file"`
	Lines      int      `yaml:"lines"`
	Groups     []string `yaml:"groups"`
	References int      `yaml:"references"`
}

// Report 스캔 결과
type Report struct {
	SharedDir string  `yaml:"shared_dir"`
	Files     []Entry `yaml:"files"`
}

// Scanner 공유 컴포넌트 참조 스캐너
type Scanner struct {
	Root      string
	SharedDir string
	Searcher  search.Searcher
	Log       *zap.SugaredLogger
}

// Scan 공유 디렉토리의 파일마다 참조 파일을 찾아 그룹별로 분류한다.
// 검색기 오류는 그대로 반환한다.
func (s *Scanner) Scan(ctx context.Context) (*Report, error) {
	cfg := config.Default()
	sharedAbs := filepath.Join(s.Root, filepath.FromSlash(s.SharedDir))

	files, err := discovery.Collect(sharedAbs, cfg.Extensions, cfg.ExcludedDirs)
	if err != nil {
		return nil, fmt.Errorf("공유 파일 수집 실패: %w", err)
	}
	s.Log.Debugw("shared files discovered", "dir", s.SharedDir, "count", len(files))

	report := &Report{SharedDir: s.SharedDir, Files: []Entry{}}
	for _, file := range files {
		rel := s.relative(file)

		refs, err := s.references(ctx, rel)
		if err != nil {
			return nil, fmt.Errorf("%s 참조 검색 실패: %w", rel, err)
		}

		groups := make(map[string]bool)
		for _, ref := range refs {
			groups[GroupOf(ref)] = true
		}

		report.Files = append(report.Files, Entry{
			File:       rel,
			Lines:      countLines(file),
			Groups:     sortedKeys(groups),
			References: len(refs),
		})
	}

	return report, nil
}

// references rel 을 가리키는 다른 파일 목록 (자기 자신 제외)
func (s *Scanner) references(ctx context.Context, rel string) ([]string, error) {
	seen := make(map[string]bool)
	var refs []string

	for _, needle := range Needles(rel) {
		matches, err := s.Searcher.Search(ctx, needle, s.Root)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			r := s.relative(m)
			if r == rel || seen[r] {
				continue
			}
			seen[r] = true
			refs = append(refs, r)
		}
	}

	sort.Strings(refs)
	return refs, nil
}

func (s *Scanner) relative(p string) string {
	rel, err := filepath.Rel(s.Root, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}

// Needles 소스에 나타날 수 있는 import 경로: 확장자를 뗀 원래 경로와 별칭 경로.
// index 파일은 디렉토리 경로도 함께 찾는다.
func Needles(rel string) []string {
	noExt := strings.TrimSuffix(rel, path.Ext(rel))
	needles := []string{noExt, AliasPrefix + noExt}
	if path.Base(noExt) == "index" {
		dir := path.Dir(noExt)
		needles = append(needles, dir, AliasPrefix+dir)
	}
	return needles
}

// GroupOf 참조 파일 경로에서 라우트 그룹 이름을 뽑는다.
// app/[locale]/(main)/x/page.tsx → main, app/[locale]/about/page.tsx → root,
// app 밖의 파일 → outside-app
func GroupOf(rel string) string {
	segments := strings.Split(filepath.ToSlash(rel), "/")
	if len(segments) == 0 || segments[0] != "app" {
		return groupOutsideApp
	}
	for i := 1; i < len(segments)-1; i++ {
		seg := segments[i]
		if len(seg) > 2 && strings.HasPrefix(seg, "(") && strings.HasSuffix(seg, ")") {
			return seg[1 : len(seg)-1]
		}
	}
	return groupRoot
}

// WriteYAML 리포트를 YAML 로 출력
func WriteYAML(w io.Writer, report *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("YAML 인코딩 실패: %w", err)
	}
	return enc.Close()
}

func countLines(file string) int {
	parsed, err := parser.ParseFile(file)
	if err != nil {
		return 0
	}
	return len(parsed.Lines)
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
