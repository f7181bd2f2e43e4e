// Command sll builds a linked list from a config file (or a built-in
// default) and walks through the list's operations, printing the
// results.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func main() {
	path := flag.String("config", "", "path to a JSON (with comments) config file")
	flag.Parse()

	conf, err := LoadConfig(afero.NewOsFs(), *path)
	if err != nil {
		log.Fatal(err)
	}

	logger, err := NewLogger(conf.Log)
	if err != nil {
		log.Fatal(err)
	}

	err = run(os.Stdout, logger, conf)
	_ = logger.Sync()
	if err != nil {
		logger.Fatal("demo failed", zap.Error(err))
	}
}
