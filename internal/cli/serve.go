package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"folio/internal/logger"
	"folio/internal/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	Long: `Serve the portfolio as a website with the same command palette,
theme toggle and contact form as the terminal UI.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (default from config, FOLIO_ADDR or PORT)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger.InitWriter(cmd.ErrOrStderr())

	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	srv := web.New(web.Options{
		Portfolio:    a.portfolio,
		Contact:      a.contact,
		SecureCookie: a.cfg.Web.SecureCookie,
		Debug:        debugMode || a.cfg.DevMode,
	})

	stopWatch, err := a.watch(srv.SetPortfolio)
	if err != nil {
		logger.Warn("CLI: content watcher disabled: %v", err)
	} else {
		defer stopWatch()
	}

	addr := a.cfg.Web.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "folio %s serving %s on %s\n", version, a.portfolio.Source, addr)
	return srv.Run(ctx, addr)
}

// commandContext returns a background context when cobra has none
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
