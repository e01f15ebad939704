package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/lograft/internal/domain"
	m "gooze.dev/pkg/lograft/internal/model"
)

const (
	writeFlagName = "write"
	diffFlagName  = "diff"
	checkFlagName = "check"
)

var (
	rewriteWriteFlag  bool
	rewriteDiffFlag   bool
	rewriteCheckFlag  bool
	rewriteReportFlag string
)

// rewriteCmd represents the rewrite command.
var rewriteCmd = newRewriteCmd()

func newRewriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewrite [paths...]",
		Short: "Rewrite intrinsic logging calls",
		Long:  rewriteLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := listArgs(args)
			if err != nil {
				return err
			}

			return workflow.Rewrite(cmd.Context(), domain.RewriteArgs{
				ListArgs: list,
				Mode:     rewriteMode(),
				Report:   m.Path(viper.GetString(reportConfigKey)),
			})
		},
	}

	configureRewriteFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(rewriteCmd)
}

func configureRewriteFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&rewriteWriteFlag, writeFlagName, "w", false, "write the result back to the source files")
	cmd.Flags().BoolVarP(&rewriteDiffFlag, diffFlagName, "d", false, "show a unified diff instead of rewriting")
	cmd.Flags().BoolVar(&rewriteCheckFlag, checkFlagName, false, "fail when any file still contains intrinsic calls")
	cmd.MarkFlagsMutuallyExclusive(writeFlagName, diffFlagName, checkFlagName)

	cmd.Flags().StringVar(&rewriteReportFlag, reportFlagName, viper.GetString(reportConfigKey), "write a YAML report of every call site to this file")
	bindFlagToConfig(cmd.Flags().Lookup(reportFlagName), reportConfigKey)
}

func rewriteMode() domain.Mode {
	switch {
	case rewriteWriteFlag:
		return domain.ModeWrite
	case rewriteDiffFlag:
		return domain.ModeDiff
	case rewriteCheckFlag:
		return domain.ModeCheck
	default:
		return domain.ModePrint
	}
}
