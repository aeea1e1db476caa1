package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/otelka/schedbot/app"
	"github.com/otelka/schedbot/config"
)

var (
	scheduleDate  string
	scheduleGroup string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print one day's schedule and exit",
	RunE:  printSchedule,
}

func init() {
	scheduleCmd.Flags().StringVarP(&scheduleDate, "date", "d", "", "date as DD.MM (required)")
	scheduleCmd.Flags().StringVarP(&scheduleGroup, "group", "g", "", "group name (defaults to the configured one)")
	_ = scheduleCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(scheduleCmd)
}

func printSchedule(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if scheduleGroup == "" {
		scheduleGroup = cfg.Bot.Group
	}
	// One-shot query: no broker connection needed.
	cfg.MQTT.Enabled = false

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	text, err := svc.ScheduleText(context.Background(), scheduleGroup, scheduleDate)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
