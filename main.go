package main

import (
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/ansel1/merry"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"diveplan/config"
	"diveplan/gas"
	"diveplan/server"
)

var (
	configPath string
	cfg        *config.Config
	rootCmd    *cobra.Command
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func init() {
	rootCmd = &cobra.Command{
		Use:           "diveplan",
		Short:         "Gas consumption and reserve planner for scuba dives",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg = config.Load(configPath)
			log.SetLevel(cfg.LogLevel)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to config.ini")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start websocket server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			upgrader.CheckOrigin = func(r *http.Request) bool {
				return true
			}
			s := server.NewServer(cfg, upgrader)
			return merry.Prepend(s.Serve(), "serve")
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "gases",
		Short: "List standard gases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printGases()
		},
	})

	rootCmd.AddCommand(planCmd(), plansCmd())
}

func printGases() {
	converter := cfg.Options.DepthConverter()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tO2 %\tHE %\tMOD m\tDECO MOD m")
	for _, name := range gas.AllNames() {
		g, _ := gas.ByName(name)
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.0f\t%.0f\n", name, g.FO2*100, g.FHe*100,
			converter.FromBar(g.Mod(cfg.Options.MaxPpO2)),
			converter.FromBar(g.Mod(cfg.Options.MaxDecoPpO2)))
	}
	_ = w.Flush()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithField("error", err).Error("failed")
		os.Exit(1)
	}
}
