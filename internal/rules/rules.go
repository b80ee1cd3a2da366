package rules

import (
	"regexp"

	"web-audit-kit/internal/config"
)

// 규칙 카테고리
const (
	CategoryStyling    = "styling"
	CategoryI18n       = "i18n"
	CategorySecurity   = "security"
	CategoryDataAccess = "data-access"
)

// Rule 한 줄 단위로 검사하는 패턴 규칙
type Rule struct {
	ID       string
	Category string
	Pattern  *regexp.Regexp
	Message  string
	Severity config.Severity
}

// Matches 줄에 패턴이 한 번이라도 나타나는지 확인
func (r Rule) Matches(line string) bool {
	return r.Pattern.MatchString(line)
}

const tailwindPalette = `(?:red|orange|amber|yellow|lime|green|emerald|teal|cyan|sky|blue|indigo|violet|purple|fuchsia|pink|rose|slate|gray|zinc|neutral|stone)`

// Default 기본 규칙 목록. 스타일 규칙은 대소문자를 무시하고
// 코드 토큰 규칙은 대소문자를 구분한다.
func Default() []Rule {
	return []Rule{
		{
			ID:       "hardcoded-color",
			Category: CategoryStyling,
			Pattern:  regexp.MustCompile(`(?i)\b(?:text|bg|border|ring|fill|stroke|from|via|to|outline|divide)-` + tailwindPalette + `-\d{2,3}\b`),
			Message:  "Hardcoded palette color; use a semantic design token",
			Severity: config.SeverityHigh,
		},
		{
			ID:       "gradient",
			Category: CategoryStyling,
			Pattern:  regexp.MustCompile(`(?i)\bbg-(?:gradient|linear)-to-[a-z]{1,2}\b`),
			Message:  "Gradient background is not part of the design system",
			Severity: config.SeverityHigh,
		},
		{
			ID:       "arbitrary-value",
			Category: CategoryStyling,
			Pattern:  regexp.MustCompile(`(?i)\b[a-z]+(?:-[a-z]+)*-\[-?\d+(?:\.\d+)?(?:px|rem|em|%|vh|vw)?\]`),
			Message:  "Arbitrary Tailwind value; prefer a scale value",
			Severity: config.SeverityMedium,
		},
		{
			ID:       "inline-style",
			Category: CategoryStyling,
			Pattern:  regexp.MustCompile(`(?i)\bstyle=\{\{`),
			Message:  "Inline style object; use utility classes",
			Severity: config.SeverityLow,
		},
		{
			ID:       "pii-console-log",
			Category: CategorySecurity,
			Pattern:  regexp.MustCompile(`console\.log\([^)]*\b(?:email|password|token|phone|address)\b`),
			Message:  "Personal data written to the console",
			Severity: config.SeverityCritical,
		},
		{
			ID:       "service-role-key",
			Category: CategorySecurity,
			Pattern:  regexp.MustCompile(`\bSUPABASE_SERVICE_ROLE_KEY\b`),
			Message:  "Service role key referenced from application code",
			Severity: config.SeverityCritical,
		},
		{
			ID:       "dangerous-html",
			Category: CategorySecurity,
			Pattern:  regexp.MustCompile(`\bdangerouslySetInnerHTML\b`),
			Message:  "dangerouslySetInnerHTML bypasses React escaping",
			Severity: config.SeverityHigh,
		},
		{
			ID:       "console-debug",
			Category: CategorySecurity,
			Pattern:  regexp.MustCompile(`\bconsole\.(?:debug|trace)\(`),
			Message:  "Debug console call left in code",
			Severity: config.SeverityLow,
		},
		{
			ID:       "select-star",
			Category: CategoryDataAccess,
			Pattern:  regexp.MustCompile("\\.select\\(\\s*['\"`]\\*['\"`]\\s*\\)"),
			Message:  "select('*') fetches every column; list the columns you need",
			Severity: config.SeverityHigh,
		},
		{
			ID:       "raw-sql",
			Category: CategoryDataAccess,
			Pattern:  regexp.MustCompile("(?i)['\"`]\\s*(?:select\\s+[\\w*,\\s]+?\\s+from|insert\\s+into|update\\s+\\w+\\s+set|delete\\s+from)\\s"),
			Message:  "Raw SQL string; use the query builder",
			Severity: config.SeverityHigh,
		},
		{
			ID:       "rpc-call",
			Category: CategoryDataAccess,
			Pattern:  regexp.MustCompile(`\.rpc\(`),
			Message:  "Direct RPC call; route it through a data-access helper",
			Severity: config.SeverityMedium,
		},
		{
			ID:       "hardcoded-text",
			Category: CategoryI18n,
			Pattern:  regexp.MustCompile(`>\s*[A-Z][a-z]+(?:\s+[A-Za-z']+)+[.!?]?\s*</`),
			Message:  "User-facing text is not translated; use t()",
			Severity: config.SeverityMedium,
		},
	}
}
