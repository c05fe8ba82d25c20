package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/username/clinic-scheduler/internal/schedule"
	"github.com/username/clinic-scheduler/pkg/dateutil"
)

func holidayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holiday",
		Short: "Manage hospital holidays and inspect public holidays",
	}
	cmd.AddCommand(holidayListCmd(), holidayAddCmd(), holidayRemoveCmd(), holidayPublicCmd())
	return cmd
}

func holidayListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List hospital holidays",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clinic, err := manager.Config()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTYPE\tWHEN\tNAME")
			for _, h := range clinic.HospitalHolidays {
				when := h.Date
				if h.Type == schedule.HolidayYearly {
					when = fmt.Sprintf("every %02d-%02d", h.Month, h.Day)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", h.ID, h.Type, when, h.Name)
			}
			return tw.Flush()
		},
	}
}

func holidayAddCmd() *cobra.Command {
	var yearly bool

	cmd := &cobra.Command{
		Use:   "add YYYY-MM-DD NAME",
		Short: "Add a hospital holiday (with --yearly only month and day are kept)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := dateutil.ParseDate(args[0])
			if err != nil {
				return err
			}

			h := schedule.HospitalHoliday{Type: schedule.HolidayFixed, Date: dateutil.FormatDate(date), Name: args[1]}
			if yearly {
				h = schedule.HospitalHoliday{Type: schedule.HolidayYearly, Month: int(date.Month()), Day: date.Day(), Name: args[1]}
			}

			var added schedule.HospitalHoliday
			err = manager.UpdateConfig(func(clinic *schedule.Config) error {
				var err error
				added, err = clinic.AddHospitalHoliday(h)
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added hospital holiday %s\n", added.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yearly, "yearly", false, "Repeat every year on the same month and day")
	return cmd
}

func holidayRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a hospital holiday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return manager.UpdateConfig(func(clinic *schedule.Config) error {
				return clinic.RemoveHospitalHoliday(args[0])
			})
		},
	}
}

func holidayPublicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "public [YYYY-MM]",
		Short: "List the public holidays of a month from the configured source",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := monthArg(args, 0)
			if err != nil {
				return err
			}

			list, err := holidays.Holidays(cmd.Context(), year, month)
			if err != nil {
				return err
			}
			for _, h := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", h.Date, h.Name)
			}
			return nil
		},
	}
}
