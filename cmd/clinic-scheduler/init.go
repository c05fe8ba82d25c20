package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/clinic-scheduler/internal/schedule"
)

func initCmd() *cobra.Command {
	var hospital string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the clinic configuration in the store directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := manager.UpdateConfig(func(clinic *schedule.Config) error {
				if hospital != "" {
					clinic.Hospital.Name = hospital
				}
				return nil
			})
			if err != nil {
				return err
			}

			logger.Info("Store initialized",
				zap.String("dir", cfg.Store.Dir),
				zap.String("hospital", hospital))
			fmt.Fprintf(cmd.OutOrStdout(), "Clinic configuration ready in %s\n", cfg.Store.Dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&hospital, "hospital", "", "Hospital name")
	return cmd
}
