package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sombr/adatpack/common"
	"github.com/sombr/adatpack/config"
	"github.com/sombr/adatpack/router"
)

const (
	defaultConfigFilename = "/etc/adatrouter.cfg"
)

func main() {
	var configFilename string
	flag.StringVar(&configFilename, "c", "", "configuration filename")
	flag.Parse()

	if configFilename == "" {
		configFilename = defaultConfigFilename
	}

	f, err := os.Open(configFilename)
	if err != nil {
		log.Fatalf("can not open config file %s: %s", configFilename, err)
	}
	defer f.Close()

	cfg, err := config.ReadRouterConfig(f)
	if err != nil {
		log.Fatalf("error reading config: %s", err)
	}

	lf, err := common.ConfigureLogging(cfg.LogFileName, cfg.Debug)
	if err != nil {
		log.Fatalf("error opening logfile: %s", err)
	}
	defer lf.Close()

	srv := router.NewRouter(cfg)
	err = srv.Start()
	if err != nil {
		log.Fatalf("error starting router server: %s", err)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT)
	defer signal.Reset()

	<-sigs
	srv.Stop()
}
