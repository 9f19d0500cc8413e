package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/user/scanreport/pkg/adk"
	"github.com/user/scanreport/pkg/engine"
	"github.com/user/scanreport/pkg/logger"
	"github.com/user/scanreport/pkg/report"
	"github.com/user/scanreport/pkg/source"
	"github.com/user/scanreport/pkg/translation"
)

var translationsCmd = &cobra.Command{
	Use:   "translations",
	Short: "Inspect and extend the translation tables",
}

var translationsCheckCmd = &cobra.Command{
	Use:   "check [results.json|results.jsonl|-]...",
	Short: "List messages of a run that have no translation",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		langFlag, _ := cmd.Flags().GetString("lang")
		strict, _ := cmd.Flags().GetBool("strict")

		a, lang, missing, err := missingTranslations(cmd, args, langFlag)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d messages in table, %d missing\n", lang, a.resolver.Len(lang), len(missing))
		for _, m := range missing {
			fmt.Fprintf(out, "  - %q\n", m)
		}
		if strict && len(missing) > 0 {
			return fmt.Errorf("%d messages have no %s translation", len(missing), lang)
		}
		return nil
	},
}

var translationsDraftCmd = &cobra.Command{
	Use:   "draft [results.json|results.jsonl|-]...",
	Short: "Ask the configured AI provider to draft missing translations",
	Long: `Draft collects the messages of a run that have no translation, asks the
configured provider for translations and writes them to an override file. Review
the file before adding it to translations_dir.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		langFlag, _ := cmd.Flags().GetString("lang")
		outPath, _ := cmd.Flags().GetString("out")
		batchSize, _ := cmd.Flags().GetInt("batch-size")

		a, lang, missing, err := missingTranslations(cmd, args, langFlag)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(missing) == 0 {
			fmt.Fprintf(out, "Nothing to draft: every message has a %s translation.\n", lang)
			return nil
		}
		if outPath == "" {
			dir := a.cfg.TranslationsDir
			if dir == "" {
				dir = "."
			}
			outPath = filepath.Join(dir, "draft_"+string(lang)+".yaml")
		}

		providerName := a.cfg.SelectedProvider
		apiKey := a.cfg.GetAPIKey(providerName)
		if apiKey == "" {
			return fmt.Errorf("no API key for %s; run 'scanreport config setup'", providerName)
		}
		provider, err := adk.NewProvider(cmd.Context(), providerName, apiKey, a.cfg.SelectedModel)
		if err != nil {
			return fmt.Errorf("creating AI provider: %w", err)
		}
		defer provider.Close()

		fmt.Fprintf(out, "Drafting %d messages with %s (%s)...\n", len(missing), providerName, a.cfg.SelectedModel)
		drafted, err := adk.NewDrafter(provider, batchSize).Draft(cmd.Context(), lang, missing, func(done, total int) {
			fmt.Fprintf(out, "  %d/%d\n", done, total)
		})
		if err != nil {
			return err
		}

		table := translation.Table{}
		if existingLang, existing, err := translation.LoadFile(outPath); err == nil && existingLang == lang {
			table = existing
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		for k, v := range drafted {
			table[k] = v
		}
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}
		if err := translation.SaveFile(outPath, lang, table); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %d drafted translations to %s\n", len(drafted), outPath)
		return nil
	},
}

// missingTranslations runs the pipeline over the inputs and returns the messages
// rendering asked for that have no translation into the requested language.
func missingTranslations(cmd *cobra.Command, args []string, langFlag string) (*app, report.Language, []string, error) {
	a, err := loadApp()
	if err != nil {
		return nil, "", nil, err
	}
	lang, err := a.language(langFlag)
	if err != nil {
		return nil, "", nil, err
	}
	if lang.IsSource() {
		return nil, "", nil, fmt.Errorf("%s is the source language; pass --lang", lang)
	}

	results, err := source.LoadAll(args)
	if err != nil {
		return nil, "", nil, err
	}
	recorder := translation.NewRecorder(a.resolver)
	pipeline := engine.NewPipeline(a.registry, recorder,
		engine.WithConcurrency(a.cfg.Concurrency),
		engine.WithLogger(logger.For("pipeline")),
	)
	if _, err := pipeline.Run(cmd.Context(), results, lang); err != nil {
		return nil, "", nil, err
	}
	return a, lang, recorder.Missing(lang), nil
}

func init() {
	translationsCheckCmd.Flags().StringP("lang", "l", "", "Language to check; default from config")
	translationsCheckCmd.Flags().Bool("strict", false, "Fail when any message is missing")

	translationsDraftCmd.Flags().StringP("lang", "l", "", "Language to draft; default from config")
	translationsDraftCmd.Flags().StringP("out", "o", "", "Override file to write (default <translations_dir>/draft_<lang>.yaml)")
	translationsDraftCmd.Flags().Int("batch-size", 20, "Messages per request")

	translationsCmd.AddCommand(translationsCheckCmd)
	translationsCmd.AddCommand(translationsDraftCmd)
	rootCmd.AddCommand(translationsCmd)
}
