package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/CalumY/ruffdocs/internal/configloader"
	"github.com/CalumY/ruffdocs/internal/logging"
	"github.com/CalumY/ruffdocs/pkg/checker"
	"github.com/CalumY/ruffdocs/pkg/docs"
)

type exemptionsFlags struct {
	format string
}

const formatJSON = "json"

// exemptionInfo represents the exemption lists in JSON output.
type exemptionInfo struct {
	Formatting     []string `json:"formatting"`
	ParseErrors    []string `json:"parse_errors"`
	RuleViolations []string `json:"rule_violations"`
}

func newExemptionsCommand() *cobra.Command {
	flags := &exemptionsFlags{}

	cmd := &cobra.Command{
		Use:   "exemptions",
		Short: "List and validate the exemption lists",
		Long: `List the documents exempt from formatting, parse-error, and rule-violation
checks, after validating that each list is sorted and duplicate-free.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExemptions(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

func runExemptions(cmd *cobra.Command, flags *exemptionsFlags) error {
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

	exemptions := &cfg.Exemptions
	if err := exemptions.Validate(); err != nil {
		return err
	}

	if flags.format == formatJSON {
		return outputExemptionsJSON(exemptions)
	}

	logger := logging.NewInteractive()

	listExemptions(logger, "formatting", exemptions.Formatting)
	listExemptions(logger, "parse error", exemptions.ParseErrors)
	listExemptions(logger, "rule violation", exemptions.RuleViolations)

	return nil
}

func listExemptions(logger *log.Logger, kind string, entries []string) {
	if len(entries) == 0 {
		logger.Info("no "+kind+" exemptions", logging.FieldDocsSkipped, 0)
		return
	}

	logger.Info(kind+" exemptions", logging.FieldDocsSkipped, len(entries))
	for _, entry := range entries {
		logger.Info(entry, logging.FieldDocument, entry+docs.Extension)
	}
}

// outputExemptionsJSON outputs the exemption lists as a JSON object.
func outputExemptionsJSON(exemptions *checker.Exemptions) error {
	info := exemptionInfo{
		Formatting:     exemptions.Formatting,
		ParseErrors:    exemptions.ParseErrors,
		RuleViolations: exemptions.RuleViolations,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(info); err != nil {
		return fmt.Errorf("encoding exemptions: %w", err)
	}
	return nil
}
