package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/user/scanreport/pkg/adk"
	"github.com/user/scanreport/pkg/config"
	"github.com/user/scanreport/pkg/report"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration (language, output, AI providers)",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active configuration with API keys masked",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		cfg, err := config.LoadFrom(path)
		if err != nil {
			return err
		}

		masked := *cfg
		masked.Providers = make(map[string]config.ProviderConfig, len(cfg.Providers))
		for name, p := range cfg.Providers {
			masked.Providers[name] = config.ProviderConfig{APIKey: maskKey(p.APIKey)}
		}
		data, err := yaml.Marshal(&masked)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", path, data)
		return nil
	},
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

var setLanguageCmd = &cobra.Command{
	Use:   "set-language LANG",
	Short: "Set the default report language (en_US, pl_PL)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := report.ParseLanguage(args[0])
		if err != nil {
			return err
		}
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg.Language = string(lang)
		if err := config.SaveConfig(cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Default language set to %s\n", lang)
		return nil
	},
}

var setKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Manually set API key for a provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, _ := cmd.Flags().GetString("provider")
		key, _ := cmd.Flags().GetString("key")

		if provider == "" || key == "" {
			return fmt.Errorf("--provider and --key are required")
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		cfg.SetAPIKey(strings.ToLower(provider), key)
		if err := config.SaveConfig(cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "API key saved for provider: %s\n", provider)
		return nil
	},
}

var setModelCmd = &cobra.Command{
	Use:   "set-model",
	Short: "Manually set the active provider and model",
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, _ := cmd.Flags().GetString("provider")
		model, _ := cmd.Flags().GetString("model")

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if provider != "" {
			cfg.SelectedProvider = strings.ToLower(provider)
		}
		if model != "" {
			cfg.SelectedModel = model
		}

		if err := config.SaveConfig(cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Active configuration updated: Provider=%s, Model=%s\n", cfg.SelectedProvider, cfg.SelectedModel)
		return nil
	},
}

var listModelsCmd = &cobra.Command{
	Use:   "list-models",
	Short: "List available models from the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		provider := cfg.SelectedProvider
		if provider == "" {
			return fmt.Errorf("no provider selected; run 'scanreport config setup'")
		}
		apiKey := cfg.GetAPIKey(provider)
		if apiKey == "" {
			return fmt.Errorf("no API key found for %s", provider)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Fetching models for %s...\n", provider)
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		p, err := adk.NewProvider(ctx, provider, apiKey, "")
		if err != nil {
			return fmt.Errorf("initializing provider: %w", err)
		}
		defer p.Close()

		models, err := p.ListModels(ctx)
		if err != nil {
			return fmt.Errorf("fetching models: %w", err)
		}

		fmt.Fprintf(out, "\nAvailable Models (%s):\n", provider)
		for _, m := range models {
			mark := " "
			if m == cfg.SelectedModel {
				mark = "*"
			}
			fmt.Fprintf(out, "%s %s\n", mark, m)
		}
		return nil
	},
}

func init() {
	providers := strings.Join(adk.Providers(), ", ")
	setKeyCmd.Flags().StringP("provider", "p", "", "Provider ("+providers+")")
	setKeyCmd.Flags().StringP("key", "k", "", "API Key")

	setModelCmd.Flags().StringP("provider", "p", "", "Provider ("+providers+")")
	setModelCmd.Flags().StringP("model", "m", "", "Model name")

	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(setLanguageCmd)
	configCmd.AddCommand(setKeyCmd)
	configCmd.AddCommand(setModelCmd)
	configCmd.AddCommand(listModelsCmd)
	rootCmd.AddCommand(configCmd)
}
