package router

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/op/go-logging"

	"github.com/sombr/adatpack/config"
	"github.com/sombr/adatpack/web"
)

type archiveInstance struct {
	isAlive bool
	host    string
}

type volumeConfig struct {
	name       string
	numEntries int
	primary    archiveInstance
	mirror     archiveInstance
}

// Router represents a read-only proxy over a set of named volumes,
// each served by a primary/mirror pair of archive servers
type Router struct {
	bind           string
	volumes        []*volumeConfig
	readers        map[string][]*archiveInstance
	panic          bool
	checkInt       time.Duration
	archiveTimeout time.Duration
	srv            *http.Server
	pingerStop     chan bool
	readerLock     sync.RWMutex
}

var (
	log = logging.MustGetLogger("router")
)

// NewRouter creates and configures a router server with a given config
func NewRouter(cfg *config.RouterCfg) *Router {
	r := &Router{
		bind:           cfg.Bind,
		volumes:        make([]*volumeConfig, 0),
		readers:        make(map[string][]*archiveInstance),
		panic:          cfg.PanicOnFaultyInstances,
		archiveTimeout: cfg.ArchiveTimeout,
		checkInt:       cfg.ArchiveCheckInterval,
		pingerStop:     make(chan bool),
	}

	for name, hp := range cfg.Volumes {
		vcfg := &volumeConfig{
			name:    name,
			primary: archiveInstance{host: hp.Primary, isAlive: false},
			mirror:  archiveInstance{host: hp.Mirror, isAlive: false},
		}
		r.volumes = append(r.volumes, vcfg)
	}
	return r
}

func (r *Router) configureVolumes() (outError error) {
	for _, vcfg := range r.volumes {

		primaryInfo, err := r.getAppInfo(&vcfg.primary)
		if err != nil {
			log.Errorf("error getting info on %s primary (%s): %s", vcfg.name, vcfg.primary.host, err)
			outError = err
		} else {
			vcfg.numEntries = primaryInfo.NumEntries
			vcfg.primary.isAlive = true
		}

		mirrorInfo, err := r.getAppInfo(&vcfg.mirror)
		if err != nil {
			log.Errorf("error getting info on %s mirror (%s): %s", vcfg.name, vcfg.mirror.host, err)
			outError = err
		} else {
			vcfg.mirror.isAlive = true
		}

		if vcfg.primary.isAlive && vcfg.mirror.isAlive {
			// mirrors must serve copies of the very same package
			if vcfg.numEntries != mirrorInfo.NumEntries {
				outError = fmt.Errorf("%s instances' entry counts don't match", vcfg.name)
				log.Error(outError)
				vcfg.mirror.isAlive = false
			}
		}

		if !vcfg.primary.isAlive && !vcfg.mirror.isAlive {
			outError = fmt.Errorf("%s instances are not accessible so can't be used", vcfg.name)
			log.Error(outError)
			continue
		}

		if _, found := r.readers[vcfg.name]; found {
			outError = fmt.Errorf("volume name %s has already been used by another instance, skipping", vcfg.name)
			log.Error(outError)
			continue
		}

		r.readers[vcfg.name] = []*archiveInstance{&vcfg.primary, &vcfg.mirror}
		log.Infof("added volume %s: primary=%s (alive=%v) mirror=%s (alive=%v)",
			vcfg.name, vcfg.primary.host, vcfg.primary.isAlive, vcfg.mirror.host, vcfg.mirror.isAlive)
	}
	return
}

func (r *Router) pingVolumes() {
	for {
		t := time.After(r.checkInt)
		select {
		case <-t:
			for name, rlist := range r.readers {
				for _, rd := range rlist {
					_, err := r.getAppInfo(rd)
					if err != nil {
						if rd.isAlive {
							log.Infof("volume %s instance (host=%s) becomes dead due to ping error: %s", name, rd.host, err)
							r.readerLock.Lock()
							rd.isAlive = false
							r.readerLock.Unlock()
						}
					} else {
						if !rd.isAlive {
							log.Infof("volume %s instance (host=%s) becomes alive", name, rd.host)
							r.readerLock.Lock()
							rd.isAlive = true
							r.readerLock.Unlock()
						}
					}
				}
			}

		case <-r.pingerStop:
			return
		}
	}
}

// Start starts the server and background pinger
func (r *Router) Start() error {
	err := r.configureVolumes()
	if err != nil && r.panic {
		return fmt.Errorf("panic due to volume failure (and panic_on_faulty flag)")
	}

	if len(r.readers) == 0 {
		err = fmt.Errorf("no volumes to work with")
		log.Error(err)
		return err
	}

	mr := mux.NewRouter()
	mr.HandleFunc("/api/v1/volumes", r.listVolumes).Methods("GET")
	mr.HandleFunc("/api/v1/volumes/{volume}/entries", r.listEntries).Methods("GET")
	mr.HandleFunc("/api/v1/volumes/{volume}/entries/{path:.+}", r.getEntry).Methods("GET")

	r.srv = &http.Server{
		Addr:    r.bind,
		Handler: mr,
	}

	go r.pingVolumes()

	go func() {
		log.Infof("server is starting at %s", r.bind)
		err := r.srv.ListenAndServe()
		if err != nil {
			return
		}
	}()

	return nil
}

// Stop stops the http server and background jobs
func (r *Router) Stop() {
	r.pingerStop <- true
	r.srv.Shutdown(nil)
}

func (r *Router) getAppInfo(si *archiveInstance) (*web.InfoResponse, error) {
	cli := &http.Client{
		Timeout: r.archiveTimeout,
	}

	url := fmt.Sprintf("http://%s/api/v1/info", si.host)
	resp, err := cli.Get(url)
	if err != nil {
		return nil, err
	}

	content, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var info web.InfoResponse
	err = json.Unmarshal(content, &info)
	if err != nil {
		return nil, err
	}
	return &info, nil
}
