package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/user/scanreport/pkg/engine"
	"github.com/user/scanreport/pkg/logger"
	"github.com/user/scanreport/pkg/render"
	"github.com/user/scanreport/pkg/source"
)

var buildCmd = &cobra.Command{
	Use:   "build [results.json|results.jsonl|-]...",
	Short: "Build a report from exported task results",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	log := logger.For("build")
	flags := cmd.Flags()
	langFlag, _ := flags.GetString("lang")
	format, _ := flags.GetString("format")
	output, _ := flags.GetString("output")
	baseline, _ := flags.GetString("baseline")
	onlyNew, _ := flags.GetBool("only-new")
	saveBaseline, _ := flags.GetBool("save-baseline")
	concurrency, _ := flags.GetInt("concurrency")

	rt, err := loadApp()
	if err != nil {
		return err
	}
	lang, err := rt.language(langFlag)
	if err != nil {
		return err
	}
	if format == "" {
		format = rt.cfg.OutputFormat
	}
	if concurrency == 0 {
		concurrency = rt.cfg.Concurrency
	}
	if baseline == "" {
		baseline = rt.cfg.BaselinePath
	}
	if (onlyNew || saveBaseline) && baseline == "" {
		baseline = engine.DefaultSnapshotPath
	}

	renderer, err := render.For(format, rt.resolver)
	if err != nil {
		return err
	}

	results, err := source.LoadAll(args)
	if err != nil {
		return err
	}
	log.WithField("task_results", len(results)).Info("Loaded task results")

	pipeline := engine.NewPipeline(rt.registry, rt.resolver,
		engine.WithConcurrency(concurrency),
		engine.WithLogger(logger.For("pipeline")),
	)
	result, err := pipeline.Run(cmd.Context(), results, lang)
	if err != nil {
		return err
	}
	log.WithField("run_id", result.RunID).WithField("findings", len(result.Entries)).Info("Report built")

	full := result
	if baseline != "" {
		snapshot, err := engine.LoadSnapshot(baseline)
		switch {
		case errors.Is(err, os.ErrNotExist):
			log.WithField("baseline", baseline).Warn("No baseline yet, every finding is new")
		case err != nil:
			return err
		default:
			diff := engine.Compare(result, snapshot)
			fmt.Fprintf(cmd.ErrOrStderr(), "Baseline comparison (vs %s):\n%s", baseline, diff.Summary(10))
			if onlyNew {
				result = engine.FilterNew(result, snapshot)
			}
		}
	}

	var out io.Writer = cmd.OutOrStdout()
	if output != "" && output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := renderer.Render(out, result); err != nil {
		return err
	}

	if saveBaseline {
		if err := engine.SaveSnapshot(baseline, full); err != nil {
			return err
		}
		log.WithField("baseline", baseline).Info("Baseline saved")
	}
	return nil
}

func init() {
	buildCmd.Flags().StringP("lang", "l", "", "Output language (en_US, pl_PL); default from config")
	buildCmd.Flags().StringP("format", "f", "", "Output format (html, json); default from config")
	buildCmd.Flags().StringP("output", "o", "", "Write the report to this file instead of stdout")
	buildCmd.Flags().String("baseline", "", "Snapshot of a previous run to compare with")
	buildCmd.Flags().Bool("only-new", false, "Drop findings already present in the baseline")
	buildCmd.Flags().Bool("save-baseline", false, "Save this run as the new baseline")
	buildCmd.Flags().IntP("concurrency", "c", 0, "Reporter calls running at once; default from config or CPU count")
	rootCmd.AddCommand(buildCmd)
}
