package types

import (
	"time"

	"web-audit-kit/internal/config"
)

// Issue 규칙 위반 한 건 (파일, 줄, 규칙 단위)
type Issue struct {
	RuleID   string          `json:"rule_id"`
	Category string          `json:"category"`
	File     string          `json:"file"`
	Line     int             `json:"line"`
	Severity config.Severity `json:"severity"`
	Message  string          `json:"message"`
	Snippet  string          `json:"snippet,omitempty"`
}

// FileReport 파일별 이슈 목록
type FileReport struct {
	Path   string  `json:"path"`
	Issues []Issue `json:"issues"`
}

// Summary 분석 요약 정보
type Summary struct {
	FilesChecked  int                     `json:"files_checked"`
	TotalIssues   int                     `json:"total_issues"`
	SeverityCount map[config.Severity]int `json:"severity_count"`
}

// AnalysisResult 분석 결과
type AnalysisResult struct {
	Root      string        `json:"root"`
	Summary   Summary       `json:"summary"`
	Files     []FileReport  `json:"files"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration"`
}

// NewAnalysisResult 빈 결과 생성
func NewAnalysisResult(root string) *AnalysisResult {
	counts := make(map[config.Severity]int, len(config.Severities))
	for _, s := range config.Severities {
		counts[s] = 0
	}
	return &AnalysisResult{
		Root:    root,
		Summary: Summary{SeverityCount: counts},
	}
}

// Add 파일 결과 추가. 이슈가 없는 파일은 목록에 남기지 않는다.
func (r *AnalysisResult) Add(path string, issues []Issue) {
	r.Summary.FilesChecked++
	if len(issues) == 0 {
		return
	}
	r.Files = append(r.Files, FileReport{Path: path, Issues: issues})
	r.Summary.TotalIssues += len(issues)
	for _, issue := range issues {
		r.Summary.SeverityCount[issue.Severity]++
	}
}

// HasCriticalIssues 심각한 이슈가 있는지 확인
func (r *AnalysisResult) HasCriticalIssues() bool {
	return r.Summary.SeverityCount[config.SeverityCritical] > 0
}

// HasHighIssues high 이슈가 있는지 확인
func (r *AnalysisResult) HasHighIssues() bool {
	return r.Summary.SeverityCount[config.SeverityHigh] > 0
}

// ExitCode critical → 2, high → 1, 그 외 0
func (r *AnalysisResult) ExitCode() int {
	switch {
	case r.HasCriticalIssues():
		return 2
	case r.HasHighIssues():
		return 1
	default:
		return 0
	}
}
