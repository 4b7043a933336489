// Command qrfsd is the QRFS demo harness: it loads configuration, starts a
// Coordinator against the configured RemoteFs backend, and exposes
// upload/download/delete/list as one-shot CLI commands plus a long-running
// "start" mode for exercising the reconciler.
package main

import (
	"fmt"
	"os"

	"github.com/marmos91/qrfs/cmd/qrfsd/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
