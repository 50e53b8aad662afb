// cmd/tools/catalog-lint/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"jobsearch-router/pkg/registry"
)

func main() {
	path := flag.String("path", "configs/agent-registry.json", "Path to agent registry file")
	flag.Parse()

	reg, err := registry.LoadFile(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid registry %s: %v\n", *path, err)
		os.Exit(1)
	}

	fmt.Printf("registry %s is valid: %d agents\n", *path, reg.Len())
}
