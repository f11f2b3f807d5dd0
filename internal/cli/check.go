package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/CalumY/ruffdocs/internal/configloader"
	"github.com/CalumY/ruffdocs/internal/logging"
	"github.com/CalumY/ruffdocs/pkg/checker"
	"github.com/CalumY/ruffdocs/pkg/docs"
	"github.com/CalumY/ruffdocs/pkg/pytools"
)

// ErrChecksFailed is returned when documentation defects are found.
var ErrChecksFailed = errors.New("documentation checks failed")

type checkFlags struct {
	generateDocs bool
	skipErrors   bool
	docsDir      string
	rulesDir     string
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check code examples in the documentation tree",
		Long:  checkLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, flags)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}

const checkLongDescription = `Check the code examples embedded in the documentation tree.

Static pages and generated rule pages are enumerated, every fenced code
fragment in an example section is formatted through the external
formatter and compared against its canonical form, and each rule page's
fragments are submitted to the rule checker to confirm the "bad" example
triggers the rule and the "use instead" examples do not.

Examples:
  ruffdocs check                   # Check docs/ and docs/rules/
  ruffdocs check --generate-docs   # Regenerate rule pages first
  ruffdocs check --skip-errors     # Tolerate unparseable fragments`

func runCheck(cmd *cobra.Command, flags *checkFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := configloader.Load(configPath, workDir)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	// Only override values that were explicitly provided via CLI flags.
	if cmd.Flags().Changed("docs-dir") {
		cfg.DocsDir = flags.docsDir
	}
	if cmd.Flags().Changed("rules-dir") {
		cfg.RulesDir = flags.rulesDir
	}

	logger.Debug("configuration loaded",
		logging.FieldDir, cfg.DocsDir,
		logging.FieldLanguage, cfg.Language,
		logging.FieldCommand, cfg.FormatterCommand,
	)

	if flags.generateDocs {
		if err := runGenerate(ctx, cmd, cfg.GenerateCommand); err != nil {
			return err
		}
	}

	ruleDocs, err := loadRuleDocs(cfg.RulesDir)
	if err != nil {
		return err
	}
	if len(ruleDocs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Please generate rules first.")
		return ErrChecksFailed
	}

	staticDocs, err := loadStaticDocs(cfg.DocsDir)
	if err != nil {
		return err
	}

	documents := append(staticDocs, ruleDocs...)

	logger.Debug("documents discovered",
		logging.FieldDocsDiscovered, len(documents),
		logging.FieldDir, cfg.RulesDir,
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	reporter := checker.NewReporter(cmd.OutOrStdout(), colorMode)

	chk := &checker.Checker{
		Formatter: &pytools.BlackFormatter{
			Command:        cfg.FormatterCommand,
			TargetVersions: cfg.TargetVersions,
		},
		RuleChecker: &pytools.RuffChecker{
			Command: cfg.CheckerCommand,
			Timeout: cfg.CheckTimeout(),
		},
		Exemptions: &cfg.Exemptions,
		Language:   cfg.Language,
		SkipErrors: flags.skipErrors,
		Reporter:   reporter,
	}

	result, runErr := chk.Run(ctx, documents)

	if err := reporter.Flush(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}

	if runErr != nil {
		return errors.Join(errors.New("check run failed"), runErr)
	}

	logger.Debug("check run complete",
		logging.FieldDocsChecked, result.DocumentsChecked,
		logging.FieldDocsSkipped, result.DocumentsSkipped,
		logging.FieldDefectsTotal, result.Defects(),
	)

	if result.ExitCode() != ExitSuccess {
		return ErrChecksFailed
	}

	return nil
}

// loadRuleDocs enumerates the generated rule pages. A missing directory is
// reported the same way as an empty one: no pages.
func loadRuleDocs(rulesDir string) ([]*docs.Document, error) {
	documents, err := docs.DiscoverDir(rulesDir, true)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("discover rule docs: %w", err)
	}
	return documents, nil
}

// loadStaticDocs enumerates the hand-written pages. The directory is
// optional.
func loadStaticDocs(docsDir string) ([]*docs.Document, error) {
	documents, err := docs.DiscoverDir(docsDir, false)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("discover static docs: %w", err)
	}
	return documents, nil
}

// runGenerate invokes the rule-page generator, streaming its output to the
// command's writers.
func runGenerate(ctx context.Context, cmd *cobra.Command, command []string) error {
	if len(command) == 0 {
		return errors.New("generate command is not configured")
	}

	logging.Default().Debug("generating rule docs", logging.FieldCommand, command)

	gen := exec.CommandContext(ctx, command[0], command[1:]...)
	gen.Stdout = cmd.OutOrStdout()
	gen.Stderr = cmd.ErrOrStderr()

	if err := gen.Run(); err != nil {
		return fmt.Errorf("generate rule docs: %w", err)
	}
	return nil
}

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	cmd.Flags().BoolVar(&flags.generateDocs, "generate-docs", false,
		"regenerate rule pages before checking")
	cmd.Flags().BoolVar(&flags.skipErrors, "skip-errors", false,
		"do not escalate fragments the formatter cannot parse")
	cmd.Flags().StringVar(&flags.docsDir, "docs-dir", "",
		"directory of static documentation pages")
	cmd.Flags().StringVar(&flags.rulesDir, "rules-dir", "",
		"directory of generated rule pages")
}
