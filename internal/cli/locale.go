package cli

import (
	"web-audit-kit/internal/locale"
	"web-audit-kit/internal/logging"

	"github.com/spf13/cobra"
)

// NewLocaleAuditCommand locale-audit 명령 생성. 보고 전용이라 항상 0 으로 끝난다.
func NewLocaleAuditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locale-audit",
		Short: "Report route files that never call setRequestLocale",
		Long: `locale-audit finds page.tsx and layout.tsx files under --root and lists
the ones that do not call setRequestLocale(). Client components
("use client") are skipped unless --include-client is given.`,
		Args: cobra.NoArgs,
		RunE: runLocaleAudit,
	}

	cmd.Flags().String("root", "app", "Directory to scan")
	cmd.Flags().Bool("include-boundaries", false, "Also check loading/error/not-found/template files")
	cmd.Flags().Bool("include-client", false, "Check client components too")

	return cmd
}

func runLocaleAudit(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("root")
	includeBoundaries, _ := cmd.Flags().GetBool("include-boundaries")
	includeClient, _ := cmd.Flags().GetBool("include-client")

	log := logging.New(false)
	defer log.Sync()

	auditor, err := locale.New(locale.NewOptions(includeBoundaries, includeClient), log)
	if err != nil {
		return err
	}

	report, err := auditor.Audit(root)
	if err != nil {
		return err
	}

	return report.Print(cmd.OutOrStdout())
}
