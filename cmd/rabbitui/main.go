package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rabbitui/rabbitui/internal/clipboard"
	"github.com/rabbitui/rabbitui/internal/config"
	"github.com/rabbitui/rabbitui/internal/rabbit"
	"github.com/rabbitui/rabbitui/internal/tui"
	"github.com/rabbitui/rabbitui/internal/update"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "rabbitui",
	Short: "Terminal dashboard for RabbitMQ",
	Long: `Rabbitui is a terminal dashboard for RabbitMQ built on its HTTP
management API. It charts broker throughput, browses exchanges and their
bindings, and lets you publish, peek and purge queues without leaving
the terminal.`,
	Version: version,
	RunE:    runDashboard,
}

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade rabbitui to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		return update.Update(version)
	},
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags override the config file.
	if cmd.Flags().Changed("addr") {
		cfg.Addr, _ = cmd.Flags().GetString("addr")
	}
	if cmd.Flags().Changed("user") {
		cfg.User, _ = cmd.Flags().GetString("user")
	}
	if cmd.Flags().Changed("pass") {
		cfg.Pass, _ = cmd.Flags().GetString("pass")
	}
	if cmd.Flags().Changed("interval") {
		ms, _ := cmd.Flags().GetInt("interval")
		cfg.RefreshMS = ms
	}

	client := rabbit.NewClient(cfg.Addr, cfg.User, cfg.Pass)
	if err := client.Healthcheck(); err != nil {
		fmt.Printf("Could not reach the management API at %s\n", cfg.Addr)
		fmt.Printf("  %v\n", err)
		fmt.Println("Is the broker running with the management plugin enabled?")
		return nil
	}

	if msg := update.CheckPeriodically(version); msg != "" {
		fmt.Println(msg)
	}

	model := tui.New(tui.Config{
		API:      client,
		Clip:     clipboard.System{},
		Addr:     cfg.Addr,
		Interval: cfg.Interval(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func init() {
	rootCmd.Flags().String("addr", "", "Management API address (default http://localhost:15672)")
	rootCmd.Flags().String("user", "", "Management API username")
	rootCmd.Flags().String("pass", "", "Management API password")
	rootCmd.Flags().Int("interval", 0, "Refresh interval in milliseconds")

	rootCmd.AddCommand(upgradeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
