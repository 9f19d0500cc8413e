package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/user/scanreport/pkg/adk"
	"github.com/user/scanreport/pkg/config"
	"github.com/user/scanreport/pkg/report"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup wizard",
	RunE: func(cmd *cobra.Command, args []string) error {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		out := cmd.OutOrStdout()
		ask := func(prompt string) string {
			fmt.Fprint(out, prompt)
			scanner.Scan()
			return strings.TrimSpace(scanner.Text())
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		fmt.Fprintln(out, "Welcome to the scanreport setup wizard")
		fmt.Fprintln(out, "--------------------------------------")

		// 1. Report language
		fmt.Fprintln(out, "Step 1: Choose the report language")
		for i, l := range report.Languages() {
			fmt.Fprintf(out, "%d. %s\n", i+1, l)
		}
		choice := ask(fmt.Sprintf("Enter number or name [%s] > ", cfg.Language))
		if choice != "" {
			if idx, err := strconv.Atoi(choice); err == nil && idx >= 1 && idx <= len(report.Languages()) {
				cfg.Language = string(report.Languages()[idx-1])
			} else if lang, err := report.ParseLanguage(choice); err == nil {
				cfg.Language = string(lang)
			} else {
				return err
			}
		}

		// 2. Output format
		if f := strings.ToLower(ask(fmt.Sprintf("\nStep 2: Output format (html/json) [%s] > ", cfg.OutputFormat))); f != "" {
			cfg.OutputFormat = f
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		// 3. AI provider for drafting translations
		fmt.Fprintln(out, "\nStep 3: AI provider for 'translations draft' (leave empty to skip)")
		for i, p := range adk.Providers() {
			fmt.Fprintf(out, "%d. %s\n", i+1, p)
		}
		choice = strings.ToLower(ask("Enter number or name > "))
		provider := ""
		for i, p := range adk.Providers() {
			if choice == p || choice == strconv.Itoa(i+1) {
				provider = p
			}
		}

		if provider != "" {
			apiKey := ask(fmt.Sprintf("\nEnter API Key for %s\n> ", provider))
			if apiKey == "" {
				return fmt.Errorf("API key cannot be empty")
			}

			fmt.Fprintln(out, "Validating key and fetching available models...")
			p, err := adk.NewProvider(cmd.Context(), provider, apiKey, "")
			if err != nil {
				return fmt.Errorf("initializing provider: %w", err)
			}
			models, err := p.ListModels(cmd.Context())
			p.Close()

			var selectedModel string
			if err != nil || len(models) == 0 {
				fmt.Fprintf(out, "Warning: Could not fetch models from API: %v\n", err)
				selectedModel = ask("Please enter model name manually > ")
			} else {
				for i, m := range models {
					fmt.Fprintf(out, "%d. %s\n", i+1, m)
				}
				selIdx, err := strconv.Atoi(ask("Select Model (number) > "))
				if err != nil || selIdx < 1 || selIdx > len(models) {
					fmt.Fprintln(out, "Invalid selection. Using first available model.")
					selIdx = 1
				}
				selectedModel = models[selIdx-1]
			}

			cfg.SelectedProvider = provider
			cfg.SelectedModel = selectedModel
			cfg.SetAPIKey(provider, apiKey)
		}

		if err := config.SaveConfig(cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}

		fmt.Fprintln(out, "--------------------------------------")
		fmt.Fprintln(out, "Setup Complete!")
		fmt.Fprintf(out, "Language: %s\n", cfg.Language)
		fmt.Fprintf(out, "Format:   %s\n", cfg.OutputFormat)
		if provider != "" {
			fmt.Fprintf(out, "Provider: %s (%s)\n", cfg.SelectedProvider, cfg.SelectedModel)
		}
		fmt.Fprintln(out, "You can now run 'scanreport build results.json'")
		return nil
	},
}

func init() {
	configCmd.AddCommand(setupCmd)
}
