package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var downloadExpectedSize int64

var downloadCmd = &cobra.Command{
	Use:   "download <remote-path>",
	Short: "Download a file through the coordinator, printing its local cache path",
	Args:  cobra.ExactArgs(1),
	RunE:  runDownload,
}

func init() {
	downloadCmd.Flags().Int64Var(&downloadExpectedSize, "expected-size", -1, "verify the downloaded file is exactly this many bytes (-1 skips verification)")
}

func runDownload(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	coord, err := buildCoordinator(cfg)
	if err != nil {
		return fmt.Errorf("build coordinator: %w", err)
	}
	defer stopAndWait(coord)

	hasExpectedSize := downloadExpectedSize >= 0
	localPath, err := coord.DownloadFile(context.Background(), args[0], downloadExpectedSize, hasExpectedSize)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	fmt.Println(localPath)
	return nil
}
