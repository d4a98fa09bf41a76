package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sombr/adatpack/adat"
	"github.com/sombr/adatpack/common"
	"github.com/sombr/adatpack/config"
	"github.com/sombr/adatpack/web"
)

const (
	defaultConfigFilename = "/etc/adatserver.cfg"
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

	cfg, err := config.ReadServerConfig(f)
	if err != nil {
		log.Fatalf("error reading config: %s", err)
	}

	lf, err := common.ConfigureLogging(cfg.LogFileName, cfg.Debug)
	if err != nil {
		log.Fatalf("error opening logfile: %s", err)
	}
	defer lf.Close()

	archiveFile, err := os.Open(cfg.ArchiveFileName)
	if err != nil {
		log.Fatalf("error opening archive file: %s", err)
	}
	defer archiveFile.Close()

	pkg, err := adat.Open(archiveFile)
	if err != nil {
		log.Fatalf("error mounting archive: %s", err)
	}

	srv, err := web.NewServer(pkg, cfg).Start()
	if err != nil {
		log.Fatalf("error starting server: %s", err)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT)
	defer signal.Reset()

	<-sigs
	srv.Shutdown(nil)
}
