// Package cmd provides the root command and CLI setup for lograft.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gooze.dev/pkg/lograft/internal/adapter"
	"gooze.dev/pkg/lograft/internal/controller"
	"gooze.dev/pkg/lograft/internal/domain"
	m "gooze.dev/pkg/lograft/internal/model"
)

var goFileAdapter adapter.GoFileAdapter
var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// excludePatterns is a root-level flag that filters files for every command.
var excludePatterns []string

var (
	runParallelFlag       int
	verboseFlag           bool
	showPathFlag          string
	showFileExtensionFlag string
	showLineFlag          bool
	logLevelFlag          string
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	goFileAdapter = adapter.NewLocalGoFileAdapter()
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(fsAdapter, goFileAdapter, reportStore, ui)
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./pkg/...      recursively scan pkg directory
  - ./cmd ./pkg    scan multiple directories`

const rootLongDescription = `Lograft rewrites intrinsic logging calls (intrinsicPrint, intrinsicWarn)
into print and warn calls prefixed with their source location, and strips
calls whose verbosity level is above the configured threshold.

` + pathPatternsHelp

const rewriteLongDescription = `Rewrite intrinsic logging calls for the given paths (default: current module).

Without a mode flag the rewritten sources are printed to stdout.

` + pathPatternsHelp

const listLongDescription = `List every intrinsic logging call and what the rewrite would do with it.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

// newRootCmd returns a root command with its persistent flags configured.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lograft",
		Short: "Source location rewriter for Go logging intrinsics",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of files processed in parallel")
	bindFlagToConfig(flags.Lookup(runParallelFlagName), runParallelConfigKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&showPathFlag, showPathFlagName, "", "path in the prefix: full, short or off")
	bindFlagToConfig(flags.Lookup(showPathFlagName), showPathConfigKey)

	flags.StringVar(&showFileExtensionFlag, showFileExtensionFlagName, "", "file extension in the prefix: full, short or off")
	bindFlagToConfig(flags.Lookup(showFileExtensionFlagName), showFileExtensionConfigKey)

	flags.BoolVar(&showLineFlag, showLineFlagName, true, "include the line number in the prefix")
	bindFlagToConfig(flags.Lookup(showLineFlagName), showLineConfigKey)

	flags.StringVar(&logLevelFlag, logLevelFlagName, "", "strip calls with a level above this threshold (default: keep all)")
	bindFlagToConfig(flags.Lookup(logLevelFlagName), logLevelConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func listArgs(args []string) (domain.ListArgs, error) {
	opts, err := optionsFromConfig()
	if err != nil {
		return domain.ListArgs{}, err
	}

	return domain.ListArgs{
		Paths:   parsePaths(args),
		Exclude: viper.GetStringSlice(excludeConfigKey),
		Options: opts,
		Threads: viper.GetInt(runParallelConfigKey),
	}, nil
}
