// cmd/tools/route-preview/main.go
//
// route-preview runs the classifier and selection policy over a query from
// the command line and prints the resulting routing decision as JSON. No
// agent is ever called; this is an offline debugging aid for catalog and
// policy changes.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"jobsearch-router/internal/classifier"
	"jobsearch-router/internal/policy"
	"jobsearch-router/pkg/registry"
)

func main() {
	registryPath := flag.String("registry", "", "Optional agent registry file (default: compiled-in)")
	fanout := flag.Int("fanout", policy.DefaultMaxFanout, "Maximum agent fan-out")
	flag.Parse()

	query := strings.Join(flag.Args(), " ")
	if query == "" {
		fmt.Fprintln(os.Stderr, "usage: route-preview [-registry path] [-fanout n] <query text>")
		os.Exit(2)
	}

	reg := registry.Default()
	if *registryPath != "" {
		var err error
		reg, err = registry.LoadFile(*registryPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load registry: %v\n", err)
			os.Exit(1)
		}
	}

	cls := classifier.NewDefault().Classify(query)
	decision := policy.New(reg, *fanout).Decide(cls)

	preview := map[string]interface{}{
		"query":    query,
		"language": cls.Language,
		"decision": decision,
	}
	if cls.Region != nil {
		preview["region"] = cls.Region.Name
		preview["matchedToken"] = cls.MatchedToken
	}
	if cls.Industry != nil {
		preview["industry"] = cls.Industry.Name
	}
	if cls.Distance != nil {
		preview["distanceKm"] = cls.Distance.Km
		preview["localSearch"] = cls.Distance.IsLocal
	}

	out, err := json.MarshalIndent(preview, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode preview: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
