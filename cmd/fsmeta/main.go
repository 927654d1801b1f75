package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := NewRootCmd(os.Stdout, os.Stderr)
	err := cmd.ExecuteContext(context.Background())
	switch {
	case err == nil:
	case errors.Is(err, errLookupFailed):
		// the failure message has already been printed as result
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
