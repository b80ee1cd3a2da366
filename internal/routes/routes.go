// Package routes app/[locale] 아래 라우트 그룹별 페이지 목록 작성
package routes

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"web-audit-kit/internal/config"
	"web-audit-kit/internal/discovery"
)

// AppDir 로캘 라우트 루트 (저장소 루트 기준)
const AppDir = "app/[locale]"

// KnownGroups 조사할 라우트 그룹 이름 (괄호 제외)
var KnownGroups = []string{
	"account",
	"admin",
	"auth",
	"business",
	"chat",
	"checkout",
	"main",
	"onboarding",
	"plans",
	"sell",
}

// SpecialFiles 그룹마다 확인하는 특수 파일
var SpecialFiles = []string{"layout", "loading", "error", "not-found"}

var pageFiles = []string{"page.tsx", "page.ts", "page.jsx", "page.js"}

// Route 페이지 하나
type Route struct {
	Path string `json:"path"`
	File string `json:"file"`
}

// Group 라우트 그룹 하나의 현황
type Group struct {
	Dir     string          `json:"dir"`
	Present bool            `json:"present"`
	Special map[string]bool `json:"special"`
	Routes  []Route         `json:"routes"`
}

// Inventory 전체 라우트 목록
type Inventory struct {
	GeneratedAt time.Time        `json:"generated_at"`
	AppDir      string           `json:"app_dir"`
	Global      map[string]bool  `json:"global"`
	Root        []Route          `json:"root"`
	Groups      map[string]Group `json:"groups"`
}

// Builder 라우트 목록 생성기
type Builder struct {
	Root string
	Now  func() time.Time
	Log  *zap.SugaredLogger
}

// Build 목록 생성. app/[locale] 이 없으면 모든 그룹이 present=false 로 나온다.
func (b *Builder) Build() (*Inventory, error) {
	appAbs := filepath.Join(b.Root, filepath.FromSlash(AppDir))

	inv := &Inventory{
		GeneratedAt: b.now(),
		AppDir:      AppDir,
		Global:      specialFiles(appAbs),
		Root:        []Route{},
		Groups:      make(map[string]Group, len(KnownGroups)),
	}

	known := make(map[string]bool, len(KnownGroups))
	for _, name := range KnownGroups {
		known["("+name+")"] = true
		dir := path.Join(AppDir, "("+name+")")
		group := Group{Dir: dir, Routes: []Route{}}

		groupAbs := filepath.Join(b.Root, filepath.FromSlash(dir))
		if info, err := os.Stat(groupAbs); err == nil && info.IsDir() {
			group.Present = true
		} else {
			b.Log.Debugw("route group missing", "group", name)
		}
		group.Special = specialFiles(groupAbs)
		inv.Groups[name] = group
	}

	pages, err := discovery.Collect(appAbs, pageFiles, config.DefaultExcludedDirs)
	if err != nil {
		return nil, fmt.Errorf("페이지 수집 실패: %w", err)
	}

	for _, page := range pages {
		if !isPageFile(filepath.Base(page)) {
			continue
		}
		rel, err := filepath.Rel(appAbs, page)
		if err != nil {
			return nil, fmt.Errorf("상대 경로 계산 실패: %w", err)
		}
		segments := strings.Split(filepath.ToSlash(rel), "/")
		dirs := segments[:len(segments)-1]
		if isPrivate(dirs) {
			continue
		}

		route := Route{
			Path: RoutePath(dirs),
			File: path.Join(AppDir, filepath.ToSlash(rel)),
		}

		if len(dirs) > 0 && known[dirs[0]] {
			name := strings.Trim(dirs[0], "()")
			group := inv.Groups[name]
			group.Routes = append(group.Routes, route)
			inv.Groups[name] = group
			continue
		}
		inv.Root = append(inv.Root, route)
	}

	sortRoutes(inv.Root)
	for name, group := range inv.Groups {
		sortRoutes(group.Routes)
		inv.Groups[name] = group
	}

	return inv, nil
}

func (b *Builder) now() time.Time {
	if b.Now == nil {
		return time.Now().UTC()
	}
	return b.Now()
}

// RoutePath 디렉토리 세그먼트를 URL 경로로 변환. (group) 세그먼트는 URL 에 나타나지 않는다.
func RoutePath(dirs []string) string {
	var parts []string
	for _, seg := range dirs {
		if strings.HasPrefix(seg, "(") && strings.HasSuffix(seg, ")") {
			continue
		}
		parts = append(parts, seg)
	}
	return "/" + strings.Join(parts, "/")
}

// WriteJSON 들여쓴 JSON 으로 출력
func WriteJSON(w io.Writer, inv *Inventory) error {
	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON 마샬링 실패: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func specialFiles(dir string) map[string]bool {
	found := make(map[string]bool, len(SpecialFiles))
	for _, name := range SpecialFiles {
		info, err := os.Stat(filepath.Join(dir, name+".tsx"))
		found[name] = err == nil && !info.IsDir()
	}
	return found
}

func isPageFile(name string) bool {
	for _, p := range pageFiles {
		if name == p {
			return true
		}
	}
	return false
}

// isPrivate _ 로 시작하는 폴더는 라우팅에서 제외된다
func isPrivate(dirs []string) bool {
	for _, seg := range dirs {
		if strings.HasPrefix(seg, "_") {
			return true
		}
	}
	return false
}

func sortRoutes(routes []Route) {
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].File < routes[j].File
	})
}
