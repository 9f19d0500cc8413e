package cmd

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/user/scanreport/pkg/engine"
	"github.com/user/scanreport/pkg/logger"
	"github.com/user/scanreport/pkg/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve report aggregation over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		a, err := loadApp()
		if err != nil {
			return err
		}
		if addr == "" {
			addr = a.cfg.Server.Addr
		}
		if !DebugMode {
			gin.SetMode(gin.ReleaseMode)
		}

		pipeline := engine.NewPipeline(a.registry, a.resolver,
			engine.WithConcurrency(a.cfg.Concurrency),
			engine.WithLogger(logger.For("pipeline")),
		)
		srv := server.New(pipeline, a.registry, a.resolver, a.cfg.ReportLanguage(), a.cfg.OutputFormat)
		return srv.Run(cmd.Context(), addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address; default server.addr from config")
	rootCmd.AddCommand(serveCmd)
}
