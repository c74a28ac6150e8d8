package main

import (
	"errors"
	"fmt"
	"os"

	"taxsync/internal/app"
	"taxsync/internal/logging"
)

func main() {
	runner := app.NewAppRunner()

	if err := runner.Run(os.Args[1:]); err != nil {
		if errors.Is(err, app.ErrUsage) || errors.Is(err, app.ErrMissingArgs) {
			fmt.Fprintln(os.Stderr, "")
			runner.Usage(os.Stderr)
		}
		logger := logging.NewLogger("main")
		logger.Error().Err(err).Msg("Execution failed")
		os.Exit(1)
	}
}
