package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"web-audit-kit/internal/config"
	"web-audit-kit/internal/types"
)

// Reporter 리포터 인터페이스
type Reporter interface {
	Generate(result *types.AnalysisResult, w io.Writer) error
}

// New 새로운 리포터 생성. icons 가 false 이면 이모지 대신 텍스트 라벨만 쓴다.
func New(format string, icons bool) (Reporter, error) {
	switch strings.ToLower(format) {
	case "console", "text", "":
		return &ConsoleReporter{Icons: icons}, nil
	case "json":
		return &JSONReporter{}, nil
	default:
		return nil, fmt.Errorf("지원하지 않는 출력 형식: %s", format)
	}
}

// ConsoleReporter 콘솔 출력 리포터
type ConsoleReporter struct {
	Icons bool
}

func (r *ConsoleReporter) Generate(result *types.AnalysisResult, w io.Writer) error {
	var output strings.Builder

	// 헤더 출력
	output.WriteString(r.icon("🔍 ") + "Pattern audit\n")
	output.WriteString(strings.Repeat("=", 50) + "\n")
	output.WriteString(fmt.Sprintf("root: %s\n", result.Root))
	output.WriteString(fmt.Sprintf("files checked: %d\n\n", result.Summary.FilesChecked))

	// 파일별 이슈 목록
	for _, file := range result.Files {
		output.WriteString(r.icon("📁 ") + file.Path + "\n")
		for _, issue := range file.Issues {
			output.WriteString(fmt.Sprintf("  line %-5d %s %-8s [%s] %s\n",
				issue.Line, r.severityIcon(issue.Severity), strings.ToUpper(issue.Severity.String()), issue.RuleID, issue.Message))
			if issue.Snippet != "" {
				output.WriteString(fmt.Sprintf("             %s\n", issue.Snippet))
			}
		}
		output.WriteString("\n")
	}

	// 심각도별 통계
	output.WriteString("Totals\n")
	output.WriteString(strings.Repeat("-", 20) + "\n")
	for _, severity := range config.Severities {
		output.WriteString(fmt.Sprintf("%s %s: %d\n", r.severityIcon(severity), severity.String(), result.Summary.SeverityCount[severity]))
	}
	output.WriteString(fmt.Sprintf("total issues: %d\n", result.Summary.TotalIssues))

	if result.Summary.TotalIssues == 0 {
		output.WriteString(r.icon("✅ ") + "no issues found\n")
	}

	_, err := io.WriteString(w, output.String())
	return err
}

func (r *ConsoleReporter) icon(s string) string {
	if !r.Icons {
		return ""
	}
	return s
}

func (r *ConsoleReporter) severityIcon(severity config.Severity) string {
	if !r.Icons {
		switch severity {
		case config.SeverityCritical:
			return "[!!]"
		case config.SeverityHigh:
			return "[! ]"
		default:
			return "[  ]"
		}
	}
	switch severity {
	case config.SeverityCritical:
		return "🚨"
	case config.SeverityHigh:
		return "⚠️"
	case config.SeverityMedium:
		return "📝"
	case config.SeverityLow:
		return "💡"
	default:
		return "❓"
	}
}

// JSONReporter JSON 출력 리포터
type JSONReporter struct{}

type jsonSummary struct {
	FilesChecked  int            `json:"files_checked"`
	TotalIssues   int            `json:"total_issues"`
	SeverityCount map[string]int `json:"severity_count"`
}

type jsonReport struct {
	Root       string             `json:"root"`
	Summary    jsonSummary        `json:"summary"`
	Files      []types.FileReport `json:"files"`
	DurationMS int64              `json:"duration_ms"`
	ExitCode   int                `json:"exit_code"`
}

func (r *JSONReporter) Generate(result *types.AnalysisResult, w io.Writer) error {
	doc := jsonReport{
		Root: result.Root,
		Summary: jsonSummary{
			FilesChecked:  result.Summary.FilesChecked,
			TotalIssues:   result.Summary.TotalIssues,
			SeverityCount: make(map[string]int, len(config.Severities)),
		},
		Files:      result.Files,
		DurationMS: result.Duration.Milliseconds(),
		ExitCode:   result.ExitCode(),
	}
	if doc.Files == nil {
		doc.Files = []types.FileReport{}
	}
	for _, severity := range config.Severities {
		doc.Summary.SeverityCount[severity.String()] = result.Summary.SeverityCount[severity]
	}

	jsonData, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON 마샬링 실패: %w", err)
	}

	_, err = w.Write(append(jsonData, '\n'))
	return err
}
