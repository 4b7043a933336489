package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [prefix]",
	Short: "List remote paths, optionally filtered by prefix",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	coord, err := buildCoordinator(cfg)
	if err != nil {
		return fmt.Errorf("build coordinator: %w", err)
	}
	defer stopAndWait(coord)

	prefix := ""
	if len(args) == 1 {
		prefix = args[0]
	}

	entries, err := coord.List(context.Background(), prefix)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	for _, e := range entries {
		fmt.Println(e)
	}
	return nil
}
