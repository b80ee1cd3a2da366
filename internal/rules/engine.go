package rules

import (
	"strings"
	"unicode/utf8"

	"web-audit-kit/internal/parser"
	"web-audit-kit/internal/types"
)

// Engine 규칙 엔진
type Engine struct {
	rules         []Rule
	snippetLength int
}

// NewEngine 새로운 규칙 엔진 생성
func NewEngine(rules []Rule, snippetLength int) *Engine {
	return &Engine{
		rules:         rules,
		snippetLength: snippetLength,
	}
}

// CheckFile 파일 검사.
// 규칙 하나가 같은 줄에서 여러 번 매칭되어도 이슈는 한 건만 만든다.
func (e *Engine) CheckFile(file *parser.ParsedFile) []types.Issue {
	var issues []types.Issue

	for _, rule := range e.rules {
		for i, line := range file.Lines {
			if !rule.Matches(line) {
				continue
			}
			issues = append(issues, types.Issue{
				RuleID:   rule.ID,
				Category: rule.Category,
				File:     file.Path,
				Line:     i + 1,
				Severity: rule.Severity,
				Message:  rule.Message,
				Snippet:  e.snippet(line),
			})
		}
	}

	return issues
}

func (e *Engine) snippet(line string) string {
	s := strings.TrimSpace(line)
	if e.snippetLength <= 0 || utf8.RuneCountInString(s) <= e.snippetLength {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:e.snippetLength]))
}
