package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
)

func main() {
	// Recover from panics so operators get a message instead of a raw trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", r)
			if os.Getenv("KE_DEBUG") != "" {
				fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			}
			os.Exit(1)
		}
	}()

	if err := Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
