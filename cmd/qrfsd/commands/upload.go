package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <local-path> <remote-path>",
	Short: "Upload a local file through the coordinator",
	Args:  cobra.ExactArgs(2),
	RunE:  runUpload,
}

func runUpload(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	coord, err := buildCoordinator(cfg)
	if err != nil {
		return fmt.Errorf("build coordinator: %w", err)
	}
	defer stopAndWait(coord)

	size, err := coord.UploadFile(context.Background(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	fmt.Printf("uploaded %s -> %s (%d bytes)\n", args[0], args[1], size)
	return nil
}
