// main is the entrypoint for the streak CLI.
package main

import (
	"fmt"
	"os"

	"github.com/streakhq/streak/cmd"
	"github.com/streakhq/streak/internal/iocache"
)

func main() {
	os.Exit(run())
}

// run keeps deferred cleanup ahead of the process exit code.
func run() int {
	defer iocache.CloseCaching()

	cmd.SetCacheManager(iocache.Manager)

	err := cmd.Execute()
	if perr := cmd.StopProfiling(); perr != nil {
		fmt.Fprintln(os.Stderr, "⚠️ ", perr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		return 1
	}
	return 0
}
