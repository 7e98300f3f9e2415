//go:build ignore

// gen-unit-catalog writes the unit catalog as JSON for shell completion
// packages and the docs site.
//
// Usage: go run scripts/gen-unit-catalog.go [--out units.json]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/corey/convertx/internal/domain/units"
)

type CategoryInfo struct {
	Name      string   `json:"name"`
	Canonical string   `json:"canonical"`
	Units     []string `json:"units"`
}

type Catalog struct {
	Version    int            `json:"version"`
	Categories []CategoryInfo `json:"categories"`
}

func main() {
	out := flag.String("out", "units.json", "Output catalog file")
	flag.Parse()

	catalog := Catalog{Version: 1}
	for _, c := range units.Categories() {
		tokens := units.Variants(c)
		if len(tokens) == 0 {
			fmt.Fprintf(os.Stderr, "skipping %s: no units\n", c)
			continue
		}
		catalog.Categories = append(catalog.Categories, CategoryInfo{
			Name:      c.String(),
			Canonical: tokens[0],
			Units:     tokens,
		})
	}

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error marshaling catalog: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", *out, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s with %d categories\n", *out, len(catalog.Categories))
}
