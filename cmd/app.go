package cmd

import (
	"fmt"

	"github.com/user/scanreport/pkg/config"
	"github.com/user/scanreport/pkg/logger"
	"github.com/user/scanreport/pkg/modules"
	"github.com/user/scanreport/pkg/report"
	"github.com/user/scanreport/pkg/reporter"
	"github.com/user/scanreport/pkg/translation"
)

// app is what every command that builds reports needs.
type app struct {
	cfg      *config.Config
	registry *reporter.Registry
	resolver *translation.Resolver
}

func loadApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	reg, err := modules.Registry()
	if err != nil {
		return nil, err
	}

	tables := translation.Builtin()
	if cfg.TranslationsDir != "" {
		overrides, err := translation.LoadDir(cfg.TranslationsDir)
		if err != nil {
			return nil, fmt.Errorf("loading translations: %w", err)
		}
		translation.Merge(tables, overrides)
		logger.For("cli").WithField("dir", cfg.TranslationsDir).Debug("Loaded translation overrides")
	}
	return &app{cfg: cfg, registry: reg, resolver: translation.NewResolver(tables)}, nil
}

// language returns the --lang flag value, or the configured language.
func (rt *app) language(flag string) (report.Language, error) {
	if flag == "" {
		return rt.cfg.ReportLanguage(), nil
	}
	return report.ParseLanguage(flag)
}
