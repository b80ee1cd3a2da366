// Package search 고정 문자열을 포함하는 파일 목록 검색.
// 외부 rg 바이너리를 쓰거나, 없으면 프로세스 내에서 직접 훑는다.
package search

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"web-audit-kit/internal/config"
	"web-audit-kit/internal/discovery"
)

// Searcher root 아래에서 literal 을 포함하는 파일 경로를 반환한다
type Searcher interface {
	Search(ctx context.Context, literal, root string) ([]string, error)
}

// ExitError rg 가 "매칭 없음"(1) 이외의 상태로 끝난 경우
type ExitError struct {
	Status int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("rg 종료 상태 %d", e.Status)
	}
	return fmt.Sprintf("rg 종료 상태 %d: %s", e.Status, e.Stderr)
}

// Ripgrep rg --files-with-matches --fixed-strings 실행.
// 검색 대상은 Walk 와 같다: 확장자 목록으로 제한하고 .gitignore 와 숨김 파일 규칙은 쓰지 않는다.
type Ripgrep struct {
	Binary       string
	Extensions   []string
	ExcludedDirs []string
}

// NewRipgrep 기본 확장자/제외 디렉토리를 적용한 rg 검색기
func NewRipgrep() *Ripgrep {
	cfg := config.Default()
	return &Ripgrep{Binary: "rg", Extensions: cfg.Extensions, ExcludedDirs: cfg.ExcludedDirs}
}

// buildArgs rg 에 넘길 인자
func (r *Ripgrep) buildArgs(literal, root string) []string {
	args := []string{"--files-with-matches", "--fixed-strings", "--no-messages", "--no-ignore", "--hidden"}
	for _, ext := range r.Extensions {
		args = append(args, "--glob", "*"+ext)
	}
	for _, dir := range r.ExcludedDirs {
		args = append(args, "--glob", "!**/"+dir+"/**")
	}
	return append(args, "--", literal, root)
}

func (r *Ripgrep) Search(ctx context.Context, literal, root string) ([]string, error) {
	args := r.buildArgs(literal, root)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.Binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("rg 실행 실패: %w", err)
		}
		// 1 은 매칭 없음
		if exitErr.ExitCode() == 1 {
			return nil, nil
		}
		return nil, &ExitError{Status: exitErr.ExitCode(), Stderr: strings.TrimSpace(stderr.String())}
	}

	var files []string
	scanner := bufio.NewScanner(&stdout)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			files = append(files, filepath.Clean(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("rg 출력 읽기 실패: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

// Walk rg 없이 직접 디렉토리를 훑는 검색기
type Walk struct {
	Extensions   []string
	ExcludedDirs []string
}

// NewWalk 기본 확장자/제외 디렉토리를 적용한 내장 검색기
func NewWalk() *Walk {
	cfg := config.Default()
	return &Walk{Extensions: cfg.Extensions, ExcludedDirs: cfg.ExcludedDirs}
}

func (w *Walk) Search(ctx context.Context, literal, root string) ([]string, error) {
	files, err := discovery.Collect(root, w.Extensions, w.ExcludedDirs)
	if err != nil {
		return nil, fmt.Errorf("파일 수집 실패: %w", err)
	}

	needle := []byte(literal)
	var matches []string
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		if bytes.Contains(data, needle) {
			matches = append(matches, filepath.Clean(file))
		}
	}
	return matches, nil
}

// Auto PATH 에 rg 가 있으면 Ripgrep, 없으면 Walk
func Auto() Searcher {
	if _, err := exec.LookPath("rg"); err == nil {
		return NewRipgrep()
	}
	return NewWalk()
}
