package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/username/clinic-scheduler/internal/schedule"
	"github.com/username/clinic-scheduler/pkg/dateutil"
)

func ruleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rule",
		Short: "Manage recurring day-off rules",
	}
	cmd.AddCommand(ruleListCmd(), ruleAddCmd(), ruleRemoveCmd())
	return cmd
}

func ruleListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recurring rules in evaluation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clinic, err := manager.Config()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDOCTOR\tTYPE\tDAY\tPERIOD\tDETAIL\tDESCRIPTION")
			for _, r := range clinic.RecurringRules {
				detail := ""
				switch r.Type {
				case schedule.RuleBiweekly:
					detail = fmt.Sprintf("ref %s off-week=%v", r.ReferenceDate, r.IsOffWeek)
				case schedule.RuleMonthly:
					detail = fmt.Sprintf("week %d", r.WeekOfMonth)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					r.ID, r.DoctorID, r.Type, dateutil.WeekdayKey(r.DayOfWeek), r.Period, detail, r.Description)
			}
			return tw.Flush()
		},
	}
}

func ruleAddCmd() *cobra.Command {
	var period, reference, description string
	var offWeek bool
	var weekOfMonth int

	cmd := &cobra.Command{
		Use:   "add DOCTOR_ID weekly|biweekly|monthly WEEKDAY",
		Short: "Add a recurring rule at the end of the evaluation order",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekday, err := weekdayArg(args[2])
			if err != nil {
				return err
			}

			rule := schedule.RecurringRule{
				DoctorID:      args[0],
				Type:          schedule.RuleType(args[1]),
				DayOfWeek:     weekday,
				Period:        schedule.Period(period),
				Description:   description,
				IsOffWeek:     offWeek,
				ReferenceDate: reference,
				WeekOfMonth:   weekOfMonth,
			}

			var added schedule.RecurringRule
			err = manager.UpdateConfig(func(clinic *schedule.Config) error {
				var err error
				added, err = clinic.AddRule(rule)
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added rule %s\n", added.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", string(schedule.PeriodAll), "Portion taken off: all, morning or afternoon")
	cmd.Flags().StringVar(&reference, "ref", "", "Reference date for biweekly rules (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&offWeek, "off-week", true, "Biweekly: the reference week is an off week")
	cmd.Flags().IntVar(&weekOfMonth, "week", 0, "Monthly: week row of the month (1-6)")
	cmd.Flags().StringVar(&description, "desc", "", "Free-form description")
	return cmd
}

func ruleRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a recurring rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return manager.UpdateConfig(func(clinic *schedule.Config) error {
				return clinic.RemoveRule(args[0])
			})
		},
	}
}
