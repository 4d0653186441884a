package main

import (
	"fmt"
	"os"

	"github.com/adanyl0v/checklist/internal/app"
)

func main() {
	err := app.RootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
