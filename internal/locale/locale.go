// Package locale 정적 렌더링 라우트 파일이 setRequestLocale 을 호출하는지 검사
package locale

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"go.uber.org/zap"

	"web-audit-kit/internal/config"
	"web-audit-kit/internal/discovery"
	"web-audit-kit/internal/parser"
)

// RequiredCall 라우트 파일에 있어야 하는 호출
const RequiredCall = "setRequestLocale("

var (
	// DefaultPatterns 기본 검사 대상 파일 이름
	DefaultPatterns = []string{"page.tsx", "layout.tsx"}
	// BoundaryPatterns --include-boundaries 로 추가되는 파일 이름
	BoundaryPatterns = []string{"loading.tsx", "error.tsx", "not-found.tsx", "template.tsx"}

	clientMarkers = []string{`"use client"`, `'use client'`}
	sourceExts    = []string{".ts", ".tsx", ".js", ".jsx"}
)

// Options 검사 옵션
type Options struct {
	Patterns      []string
	IncludeClient bool
}

// NewOptions 플래그 값으로 옵션 구성
func NewOptions(includeBoundaries, includeClient bool) Options {
	patterns := append([]string(nil), DefaultPatterns...)
	if includeBoundaries {
		patterns = append(patterns, BoundaryPatterns...)
	}
	return Options{Patterns: patterns, IncludeClient: includeClient}
}

// Report 검사 결과
type Report struct {
	Root          string
	Matched       int
	SkippedClient int
	Checked       int
	Missing       []string
}

// Auditor setRequestLocale 검사기
type Auditor struct {
	opts     Options
	patterns []glob.Glob
	log      *zap.SugaredLogger
}

// New 파일 이름 패턴을 컴파일해 검사기 생성
func New(opts Options, log *zap.SugaredLogger) (*Auditor, error) {
	a := &Auditor{opts: opts, log: log}
	for _, p := range opts.Patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("잘못된 파일 패턴 %q: %w", p, err)
		}
		a.patterns = append(a.patterns, g)
	}
	return a, nil
}

// Audit root 아래 대상 파일 중 RequiredCall 이 없는 파일을 찾는다.
// root 가 없으면 빈 결과를 반환한다.
func (a *Auditor) Audit(root string) (*Report, error) {
	files, err := discovery.Collect(root, sourceExts, config.DefaultExcludedDirs)
	if err != nil {
		return nil, fmt.Errorf("파일 수집 실패: %w", err)
	}

	report := &Report{Root: root}
	for _, file := range files {
		if !a.matches(filepath.Base(file)) {
			continue
		}
		report.Matched++

		parsed, err := parser.ParseFile(file)
		if err != nil {
			a.log.Debugw("skipping unreadable file", "file", file, "error", err)
			continue
		}

		if !a.opts.IncludeClient && IsClient(parsed.Content) {
			report.SkippedClient++
			continue
		}

		report.Checked++
		if !strings.Contains(parsed.Content, RequiredCall) {
			report.Missing = append(report.Missing, filepath.ToSlash(file))
		}
	}

	return report, nil
}

func (a *Auditor) matches(name string) bool {
	for _, g := range a.patterns {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// IsClient 클라이언트 컴포넌트 지시어가 있는지 확인
func IsClient(content string) bool {
	for _, marker := range clientMarkers {
		if strings.Contains(content, marker) {
			return true
		}
	}
	return false
}

// Print 요약과 위반 파일 목록 출력
func (r *Report) Print(w io.Writer) error {
	var out strings.Builder
	out.WriteString(fmt.Sprintf("root: %s\n", r.Root))
	out.WriteString(fmt.Sprintf("files matched: %d\n", r.Matched))
	out.WriteString(fmt.Sprintf("skipped client: %d\n", r.SkippedClient))
	out.WriteString(fmt.Sprintf("checked: %d\n", r.Checked))
	out.WriteString(fmt.Sprintf("missing setRequestLocale: %d\n", len(r.Missing)))
	for _, path := range r.Missing {
		out.WriteString(path + "\n")
	}
	_, err := io.WriteString(w, out.String())
	return err
}
