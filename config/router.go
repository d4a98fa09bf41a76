package config

import (
	"fmt"
	"io"
	"time"

	"github.com/viert/properties"
)

const (
	defaultPanic                = false
	defaultArchiveTimeout       = 500 // ms
	defaultArchiveCheckInterval = 30  // sec
)

// HostPair represents two archive servers serving
// copies of the same package
type HostPair struct {
	Primary string
	Mirror  string
}

// RouterCfg represents a volume router config
type RouterCfg struct {
	Bind                   string
	LogFileName            string
	Debug                  bool
	PanicOnFaultyInstances bool
	ArchiveTimeout         time.Duration
	ArchiveCheckInterval   time.Duration
	Volumes                map[string]HostPair
}

// ReadRouterConfig reads and returns a volume router config
// from an io.Reader object
func ReadRouterConfig(r io.Reader) (*RouterCfg, error) {
	p, err := properties.Read(r)
	if err != nil {
		return nil, err
	}

	cfg := &RouterCfg{}

	cfg.Bind, err = p.GetString("main.bind")
	if err != nil {
		return nil, fmt.Errorf("error reading main.bind: %s", err)
	}

	cfg.LogFileName, err = p.GetString("main.log")
	if err != nil {
		cfg.LogFileName = ""
	}

	cfg.Debug, err = p.GetBool("main.debug")
	if err != nil {
		cfg.Debug = false
	}

	timeout, err := p.GetInt("main.archive_timeout")
	if err != nil {
		timeout = defaultArchiveTimeout
	}
	cfg.ArchiveTimeout = time.Duration(timeout) * time.Millisecond

	checkInterval, err := p.GetInt("main.archive_check_interval")
	if err != nil {
		checkInterval = defaultArchiveCheckInterval
	}
	cfg.ArchiveCheckInterval = time.Duration(checkInterval) * time.Second

	cfg.PanicOnFaultyInstances, err = p.GetBool("main.panic_on_faulty")
	if err != nil {
		cfg.PanicOnFaultyInstances = defaultPanic
	}

	cfg.Volumes = make(map[string]HostPair)

	subkeys, err := p.Subkeys("")
	if err != nil {
		return nil, fmt.Errorf("error reading properties subkeys: %s", err)
	}

	for _, key := range subkeys {
		if key == "main" {
			continue
		}

		hp := HostPair{}
		hp.Primary, _ = p.GetString(key + ".primary")
		hp.Mirror, _ = p.GetString(key + ".mirror")

		if hp.Primary != "" || hp.Mirror != "" {
			cfg.Volumes[key] = hp
		}
	}

	return cfg, nil
}
