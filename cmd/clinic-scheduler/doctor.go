package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/username/clinic-scheduler/internal/schedule"
)

func doctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Manage doctors and their weekly schedules",
	}
	cmd.AddCommand(
		doctorListCmd(),
		doctorAddCmd(),
		doctorUpdateCmd(),
		doctorRemoveCmd(),
		doctorReorderCmd(),
		doctorScheduleCmd(),
	)
	return cmd
}

func doctorListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List doctors in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clinic, err := manager.Config()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ORDER\tID\tNAME\tCOLOR\tACTIVE\tWEEK")
			for _, d := range clinic.Doctors {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%v\t%s\n",
					d.Order, d.ID, d.Name, d.Color, d.Active, weekSummary(clinic.DefaultSchedule[d.ID]))
			}
			return tw.Flush()
		},
	}
}

func doctorAddCmd() *cobra.Command {
	var id, color string
	var inactive bool

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a doctor with the default weekly schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var added schedule.Doctor
			err := manager.UpdateConfig(func(clinic *schedule.Config) error {
				var err error
				added, err = clinic.AddDoctor(schedule.Doctor{
					ID:     id,
					Name:   args[0],
					Color:  color,
					Active: !inactive,
				})
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added doctor %s (%s)\n", added.Name, added.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Doctor ID (default: generated UUID)")
	cmd.Flags().StringVar(&color, "color", "", "Display color (#rrggbb)")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "Add the doctor as inactive")
	return cmd
}

func doctorUpdateCmd() *cobra.Command {
	var name, color string
	var active bool

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change a doctor's name, color or active flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return manager.UpdateConfig(func(clinic *schedule.Config) error {
				d, ok := clinic.Doctor(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", schedule.ErrDoctorNotFound, args[0])
				}
				if cmd.Flags().Changed("name") {
					d.Name = name
				}
				if cmd.Flags().Changed("color") {
					d.Color = color
				}
				if cmd.Flags().Changed("active") {
					d.Active = active
				}
				return clinic.UpdateDoctor(d)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&color, "color", "", "New display color (#rrggbb)")
	cmd.Flags().BoolVar(&active, "active", true, "Whether the doctor appears in generated schedules")
	return cmd
}

func doctorRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a doctor together with its weekly schedule and rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return manager.UpdateConfig(func(clinic *schedule.Config) error {
				return clinic.RemoveDoctor(args[0])
			})
		},
	}
}

func doctorReorderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder ID...",
		Short: "Set the display order; every doctor must be listed exactly once",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return manager.UpdateConfig(func(clinic *schedule.Config) error {
				if !clinic.IsDoctorPermutation(args) {
					return fmt.Errorf("reorder needs each of the %d doctor ids exactly once, got %v", len(clinic.Doctors), args)
				}
				clinic.ReorderDoctors(args)
				return nil
			})
		},
	}
}

func doctorScheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule ID WEEKDAY HH:MM-HH:MM|off",
		Short: "Set one weekday of a doctor's weekly schedule",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekday, err := weekdayArg(args[1])
			if err != nil {
				return err
			}

			var interval *schedule.DaySchedule
			if args[2] != string(schedule.StatusOff) {
				start, end, ok := strings.Cut(args[2], "-")
				if !ok {
					return fmt.Errorf("invalid interval %q (use HH:MM-HH:MM or off)", args[2])
				}
				interval = &schedule.DaySchedule{Start: start, End: end}
			}

			return manager.UpdateConfig(func(clinic *schedule.Config) error {
				ws := schedule.WeeklySchedule{}
				for k, v := range clinic.DefaultSchedule[args[0]] {
					ws[k] = v
				}
				ws[schedule.DayOfWeekOf(weekday)] = interval
				return clinic.SetDefaultSchedule(args[0], ws)
			})
		},
	}
}

func weekSummary(ws schedule.WeeklySchedule) string {
	keys := []schedule.DayOfWeek{
		schedule.Sunday, schedule.Monday, schedule.Tuesday, schedule.Wednesday,
		schedule.Thursday, schedule.Friday, schedule.Saturday,
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if iv := ws[k]; iv != nil {
			parts = append(parts, fmt.Sprintf("%s %s-%s", k, iv.Start, iv.End))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}
