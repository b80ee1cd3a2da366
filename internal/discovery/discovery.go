// Package discovery 검사 대상 파일 수집
package discovery

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Collect root 아래에서 확장자가 일치하는 파일을 정렬된 순서로 반환한다.
// excludedDirs 와 이름이 정확히 같은 디렉토리는 통째로 건너뛴다.
// root 를 stat 할 수 없으면(없음, 파일을 지나는 경로, 잘못된 문자) 빈 목록을 돌려준다.
func Collect(root string, extensions, excludedDirs []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, nil
	}
	if !info.IsDir() {
		if hasSuffix(root, extensions) {
			return []string{root}, nil
		}
		return nil, nil
	}

	skip := make(map[string]bool, len(excludedDirs))
	for _, dir := range excludedDirs {
		skip[dir] = true
	}

	seen := make(map[string]bool)
	var files []string

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// 읽을 수 없는 하위 디렉토리는 무시
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && skip[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if !hasSuffix(d.Name(), extensions) || !isRegularFile(path, d) {
			return nil
		}
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// isRegularFile 일반 파일이거나 일반 파일을 가리키는 심볼릭 링크이면 true
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func hasSuffix(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
