package analyzer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"web-audit-kit/internal/config"
	"web-audit-kit/internal/discovery"
	"web-audit-kit/internal/parser"
	"web-audit-kit/internal/rules"
	"web-audit-kit/internal/types"
)

// Analyzer 코드 분석기
type Analyzer struct {
	config     *config.Config
	ruleEngine *rules.Engine
	log        *zap.SugaredLogger
}

// New 새로운 분석기 생성
func New(cfg *config.Config, ruleSet []rules.Rule, log *zap.SugaredLogger) *Analyzer {
	return &Analyzer{
		config:     cfg,
		ruleEngine: rules.NewEngine(ruleSet, cfg.SnippetLength),
		log:        log,
	}
}

// fileOutcome 파일 하나의 검사 결과
type fileOutcome struct {
	checked bool
	issues  []types.Issue
}

// Analyze 코드 분석 실행
func (a *Analyzer) Analyze(ctx context.Context, targetPath string) (*types.AnalysisResult, error) {
	result := types.NewAnalysisResult(targetPath)
	result.StartTime = time.Now()

	// 대상 파일 수집
	files, err := discovery.Collect(targetPath, a.config.Extensions, a.config.ExcludedDirs)
	if err != nil {
		return nil, fmt.Errorf("파일 수집 실패: %w", err)
	}
	a.log.Debugw("files discovered", "root", targetPath, "count", len(files))

	// 결과는 발견 순서 인덱스에 저장하므로 출력 순서는 병렬 여부와 무관하다
	outcomes := make([]fileOutcome, len(files))

	g, gctx := errgroup.WithContext(ctx)
	if a.config.Workers > 0 {
		g.SetLimit(a.config.Workers)
	}
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = a.analyzeFile(file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("분석 중단: %w", err)
	}

	for i, file := range files {
		if !outcomes[i].checked {
			continue
		}
		result.Add(file, outcomes[i].issues)
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)

	return result, nil
}

// analyzeFile 개별 파일 분석. 읽을 수 없는 파일은 조용히 건너뛴다.
func (a *Analyzer) analyzeFile(filePath string) fileOutcome {
	parsed, err := parser.ParseFile(filePath)
	if err != nil {
		a.log.Debugw("skipping unreadable file", "file", filePath, "error", err)
		return fileOutcome{}
	}

	return fileOutcome{
		checked: true,
		issues:  a.ruleEngine.CheckFile(parsed),
	}
}
