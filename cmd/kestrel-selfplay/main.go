// kestrel-selfplay runs an A/B test between two engine option sets,
// described by a TOML config file, and reports a confidence that the
// candidate is an improvement over the baseline.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/kestrel-chess/kestrel/selfplay"
)

var config = flag.String("config", "", "path to a TOML selfplay config")

func main() {
	flag.Parse()
	if *config == "" {
		log.Fatal("--config not specified")
	}

	cfg, err := selfplay.LoadConfig(*config)
	if err != nil {
		log.Fatalf("cannot load config %s: %v", *config, err)
	}

	result, err := selfplay.Run(cfg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("candidate: %d wins, %d losses, %d draws\n", result.Wins, result.Losses, result.Draws)
	fmt.Printf("confidence candidate is stronger: %.1f%%\n", result.Confidence()*100)
}
