// @title        clientapi
// @version      1.0
// @description  Client objects API: concurrent lookups joined into one response.
// @BasePath     /
package main

import (
	"context"
	"fmt"
	"os"

	"clientapi/internal/cli"
)

// runMain executes the command tree and returns the process exit code.
func runMain() int {
	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(runMain())
}
