package cli

import (
	"web-audit-kit/internal/analyzer"
	"web-audit-kit/internal/config"
	"web-audit-kit/internal/logging"
	"web-audit-kit/internal/reporter"
	"web-audit-kit/internal/rules"

	"github.com/spf13/cobra"
)

// NewPatternAuditCommand pattern-audit 명령 생성
func NewPatternAuditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pattern-audit",
		Short: "Scan source files for forbidden styling, i18n, security and data-access patterns",
		Long: `pattern-audit walks a source tree and checks every line of every
.ts/.tsx/.js/.jsx file against a fixed rule table.

Exit codes:
  0  no high or critical issues
  1  at least one high issue
  2  at least one critical issue

Examples:
  pattern-audit                      # audit the current directory
  pattern-audit --path ./app         # audit a subtree
  pattern-audit --format json        # machine-readable output`,
		Args: cobra.NoArgs,
		RunE: runPatternAudit,
	}

	cmd.Flags().String("path", ".", "Root directory to audit")
	cmd.Flags().StringP("format", "o", "console", "Output format (console/json)")
	cmd.Flags().BoolP("verbose", "v", false, "Enable debug logging on stderr")

	return cmd
}

func runPatternAudit(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("path")
	format, _ := cmd.Flags().GetString("format")
	verbose, _ := cmd.Flags().GetBool("verbose")

	log := logging.New(verbose)
	defer log.Sync()

	out := cmd.OutOrStdout()
	rep, err := reporter.New(format, isTerminal(out))
	if err != nil {
		return err
	}

	log.Debugw("starting pattern audit", "root", root, "format", format)

	a := analyzer.New(config.Default(), rules.Default(), log)
	result, err := a.Analyze(cmd.Context(), root)
	if err != nil {
		return err
	}

	if err := rep.Generate(result, out); err != nil {
		return err
	}

	log.Debugw("pattern audit finished", "files", result.Summary.FilesChecked, "issues", result.Summary.TotalIssues, "duration", result.Duration)

	if code := result.ExitCode(); code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}
