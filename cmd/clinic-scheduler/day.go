package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/username/clinic-scheduler/internal/schedule"
)

func editCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "edit YYYY-MM DAY DOCTOR_ID work|off|morning|afternoon",
		Short: "Set a doctor's entry for one day as a manual edit",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := monthArg(args, 0)
			if err != nil {
				return err
			}
			day, err := dayArg(args[1])
			if err != nil {
				return err
			}

			entry := schedule.DoctorDaySchedule{Status: schedule.DayStatus(args[3])}
			switch entry.Status {
			case schedule.StatusWork:
				entry.Start, entry.End = orDefault(start, schedule.DefaultWorkStart), orDefault(end, schedule.DefaultWorkEnd)
			case schedule.StatusMorning:
				entry.Start, entry.End = orDefault(start, schedule.DefaultWorkStart), orDefault(end, schedule.MorningEnd)
			case schedule.StatusAfternoon:
				entry.Start, entry.End = orDefault(start, schedule.AfternoonStart), orDefault(end, schedule.DefaultWorkEnd)
			}

			ms, err := manager.EditDay(year, month, day, args[2], entry)
			if err != nil {
				return err
			}
			printEntry(cmd, ms, day, args[2])
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	return cmd
}

func toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle YYYY-MM DAY DOCTOR_ID",
		Short: "Switch a doctor between off and a full working day",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := monthArg(args, 0)
			if err != nil {
				return err
			}
			day, err := dayArg(args[1])
			if err != nil {
				return err
			}

			ms, err := manager.ToggleDay(year, month, day, args[2])
			if err != nil {
				return err
			}
			printEntry(cmd, ms, day, args[2])
			return nil
		},
	}
}

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset YYYY-MM DAY DOCTOR_ID",
		Short: "Drop a manual edit and restore the weekly default",
		Long: "Drop a manual edit and restore the doctor's weekly default for the day.\n" +
			"Recurring rules and holidays are applied again on the next generate.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := monthArg(args, 0)
			if err != nil {
				return err
			}
			day, err := dayArg(args[1])
			if err != nil {
				return err
			}

			ms, err := manager.ResetDay(year, month, day, args[2])
			if err != nil {
				return err
			}
			printEntry(cmd, ms, day, args[2])
			return nil
		},
	}
}

func printEntry(cmd *cobra.Command, ms *schedule.MonthSchedule, day int, doctorID string) {
	data, _ := ms.Day(day)
	fmt.Fprintf(cmd.OutOrStdout(), "%d-%02d-%02d %s: %s\n",
		ms.Year, int(ms.Month), day, doctorID, cellText(data.Doctors[doctorID]))
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
