package cli

import (
	"web-audit-kit/internal/logging"
	"web-audit-kit/internal/search"
	"web-audit-kit/internal/sharedrefs"

	"github.com/spf13/cobra"
)

// NewSharedRefsCommand shared-refs 명령 생성
func NewSharedRefsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shared-refs",
		Short: "Show which route groups reference each file in components/shared",
		Long: `shared-refs searches the repository (run it from the repo root) for
imports of every file under components/shared and prints, per file, its
line count and the route groups that reference it. ripgrep is used when
available.`,
		Args: cobra.NoArgs,
		RunE: runSharedRefs,
	}
}

func runSharedRefs(cmd *cobra.Command, args []string) error {
	log := logging.New(false)
	defer log.Sync()

	scanner := &sharedrefs.Scanner{
		Root:      ".",
		SharedDir: sharedrefs.DefaultSharedDir,
		Searcher:  search.Auto(),
		Log:       log,
	}

	report, err := scanner.Scan(cmd.Context())
	if err != nil {
		return err
	}

	return sharedrefs.WriteYAML(cmd.OutOrStdout(), report)
}
