package config

import "runtime"

// Severity 심각도 열거형
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// Severities 심각도 목록 (높은 순)
var Severities = []Severity{
	SeverityCritical,
	SeverityHigh,
	SeverityMedium,
	SeverityLow,
}

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// MarshalText JSON 출력 시 심각도를 문자열로 표현
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Config 패턴 검사 설정
type Config struct {
	// Extensions 검사 대상 파일 접미사
	Extensions []string
	// ExcludedDirs 경로 세그먼트가 정확히 일치하면 제외
	ExcludedDirs []string
	// SnippetLength 코드 스니펫 최대 길이
	SnippetLength int
	// Workers 동시에 검사할 파일 수
	Workers int
}

// DefaultExcludedDirs 기본 제외 디렉토리
var DefaultExcludedDirs = []string{
	".git",
	".next",
	"node_modules",
	"dist",
	"build",
	"coverage",
	"playwright-report",
	"test-results",
	"blob-report",
	"storybook-static",
}

// Default 기본 설정 반환
func Default() *Config {
	return &Config{
		Extensions:    []string{".ts", ".tsx", ".js", ".jsx"},
		ExcludedDirs:  append([]string(nil), DefaultExcludedDirs...),
		SnippetLength: 120,
		Workers:       runtime.NumCPU(),
	}
}
