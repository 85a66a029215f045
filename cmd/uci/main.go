package main

import (
	"flag"
	"log"
	"os"

	"xfchess-engine/internal/config"
)

func main() {
	cfgPath := flag.String("config", "", "YAML engine settings (defaults are used when empty)")
	flag.Parse()

	log.SetPrefix("uci: ")
	log.SetFlags(0)

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatal(err)
		}
	}

	if err := newUCI(cfg, os.Stdout).run(os.Stdin); err != nil {
		log.Fatal(err)
	}
}
