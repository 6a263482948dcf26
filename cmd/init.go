package cmd

import (
	"log"

	"github.com/spf13/cobra"

	config "task-list-service.com/task-list-service/internal/configs"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty task collection",
	Long:  "Creates an empty task collection in the configured storage backend. Existing data is left untouched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		ctx := cmd.Context()

		taskRepo, closeRepo, err := config.NewTaskRepository(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		if err := taskRepo.Initialize(ctx); err != nil {
			return err
		}

		log.Printf("task storage ready (storage: %s)", cfg.StorageDriver)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
