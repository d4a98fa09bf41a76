package config

import (
	"fmt"
	"io"

	"github.com/viert/properties"
)

const (
	defaultLogFileName = "/var/log/adatserver.log"
)

// ServerCfg represents an archive server config
type ServerCfg struct {
	Bind            string
	ArchiveFileName string
	LogFileName     string
	Debug           bool
}

// ReadServerConfig reads and returns an archive server config
// from an io.Reader object
func ReadServerConfig(r io.Reader) (*ServerCfg, error) {
	p, err := properties.Read(r)
	if err != nil {
		return nil, err
	}

	cfg := &ServerCfg{}

	cfg.Bind, err = p.GetString("main.bind")
	if err != nil {
		return nil, fmt.Errorf("error reading main.bind: %s", err)
	}

	cfg.ArchiveFileName, err = p.GetString("archive.file")
	if err != nil {
		return nil, fmt.Errorf("error reading archive.file: %s", err)
	}

	cfg.LogFileName, err = p.GetString("main.log")
	if err != nil {
		cfg.LogFileName = defaultLogFileName
	}

	cfg.Debug, err = p.GetBool("main.debug")
	if err != nil {
		cfg.Debug = false
	}

	return cfg, nil
}
