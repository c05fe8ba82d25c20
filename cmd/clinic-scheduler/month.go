package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/clinic-scheduler/pkg/dateutil"
)

func generateCmd() *cobra.Command {
	var through string

	cmd := &cobra.Command{
		Use:   "generate [YYYY-MM]",
		Short: "Generate (or regenerate) the schedule of a month, keeping manual edits",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := monthArg(args, 0)
			if err != nil {
				return err
			}

			if through != "" {
				toYear, toMonth, err := dateutil.ParseMonthKey(through)
				if err != nil {
					return err
				}
				return generateRange(cmd, year, month, toYear, toMonth)
			}

			ms, err := manager.GenerateMonth(cmd.Context(), year, month)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			holidaysCount := 0
			for _, d := range ms.Days {
				if d.IsHoliday {
					holidaysCount++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s: %d days, %d holidays\n",
				dateutil.MonthKey(year, month), len(ms.Days), holidaysCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&through, "through", "", "Generate every month up to and including YYYY-MM")
	return cmd
}

func generateRange(cmd *cobra.Command, fromYear int, fromMonth time.Month, toYear int, toMonth time.Month) error {
	result, err := manager.GenerateRange(cmd.Context(), fromYear, fromMonth, toYear, toMonth)
	if err != nil {
		return err
	}

	failed := 0
	for _, mr := range result.Months {
		if mr.Success {
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s: %d holidays\n", mr.Key, mr.Holidays)
		} else {
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "Failed %s: %s\n", mr.Key, mr.Error)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d month(s) in %s\n", result.ProcessedMonths, result.Duration.Round(time.Millisecond))

	if failed > 0 {
		return fmt.Errorf("%d of %d month(s) failed", failed, result.ProcessedMonths)
	}
	return nil
}

func showCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show [YYYY-MM]",
		Short: "Print the stored schedule of a month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := monthArg(args, 0)
			if err != nil {
				return err
			}

			ms, err := manager.Month(year, month)
			if err != nil {
				return err
			}

			if asJSON {
				data, err := json.MarshalIndent(ms, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal schedule: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			clinic, err := manager.Config()
			if err != nil {
				return err
			}
			renderMonth(cmd.OutOrStdout(), ms, clinic, dateutil.Today())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw schedule as JSON")
	return cmd
}

func noticeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notice YYYY-MM TEXT...",
		Short: "Set the notice text shown with a month",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := monthArg(args, 0)
			if err != nil {
				return err
			}

			text := strings.Join(args[1:], " ")
			if _, err := manager.SetNotice(year, month, text); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Notice for %s updated\n", dateutil.MonthKey(year, month))
			return nil
		},
	}
}

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear YYYY-MM",
		Short: "Delete the stored schedule of a month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := monthArg(args, 0)
			if err != nil {
				return err
			}

			if err := manager.ClearMonth(year, month); err != nil {
				return err
			}
			logger.Debug("Cleared month", zap.String("month", args[0]))
			fmt.Fprintf(cmd.OutOrStdout(), "Schedule %s deleted\n", dateutil.MonthKey(year, month))
			return nil
		},
	}
}
