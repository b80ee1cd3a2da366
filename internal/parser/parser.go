package parser

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrNotText UTF-8 로 디코딩할 수 없는 파일
var ErrNotText = errors.New("UTF-8 텍스트 파일이 아님")

// ParsedFile 파싱된 파일 정보
type ParsedFile struct {
	Path    string
	Content string
	Lines   []string
}

// ParseFile 파일을 읽어 줄 단위로 나눈다
func ParseFile(filePath string) (*ParsedFile, error) {
	content, err := readFile(filePath)
	if err != nil {
		return nil, err
	}
	return Parse(filePath, content), nil
}

// Parse 메모리 내용을 줄 단위로 나눈다. 줄 번호는 Lines 인덱스 + 1.
func Parse(filePath, content string) *ParsedFile {
	content = strings.TrimPrefix(content, "\ufeff")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	// 마지막 개행 뒤의 빈 줄은 줄로 세지 않음
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return &ParsedFile{
		Path:    filePath,
		Content: content,
		Lines:   lines,
	}
}

// readFile 파일 읽기
func readFile(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", filePath, ErrNotText)
	}
	return string(data), nil
}
