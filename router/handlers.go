package router

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net/http"

	"github.com/gorilla/mux"
)

type volumeDesc struct {
	Name           string `json:"name"`
	AliveInstances int    `json:"alive_instances"`
}

type volumeListResponse struct {
	Volumes []volumeDesc `json:"volumes"`
}

func (r *Router) proxyData(hosts []string, uri string) ([]byte, int, error) {
	cli := &http.Client{Timeout: r.archiveTimeout}

	for rt := 3; rt > 0; rt-- {
		idx := rand.Intn(len(hosts))
		host := hosts[idx]
		url := fmt.Sprintf("http://%s%s", host, uri)
		log.Debugf("getting data from %s", url)
		resp, err := cli.Get(url)
		if err != nil {
			log.Debugf("error getting data from %s: %s. retries left: %d", host, err, rt-1)
			continue
		}
		if resp.StatusCode != http.StatusOK && resp.StatusCode >= 500 {
			log.Debugf("non-ok status code from %s: %d retries left: %d", host, resp.StatusCode, rt-1)
			continue
		}
		data, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			log.Debugf("error reading response body from %s: %s. retries left: %d", host, err, rt-1)
			continue
		}
		return data, resp.StatusCode, nil
	}
	return nil, 0, fmt.Errorf("no more retries left")
}

func (r *Router) aliveReaders(volume string) ([]string, bool) {
	r.readerLock.RLock()
	defer r.readerLock.RUnlock()

	readers, found := r.readers[volume]
	if !found {
		return nil, false
	}

	alive := make([]string, 0, 2)
	for _, reader := range readers {
		if reader.isAlive {
			alive = append(alive, reader.host)
		}
	}
	return alive, true
}

func (r *Router) proxyRequest(w http.ResponseWriter, volume string, uri string) {
	alive, found := r.aliveReaders(volume)
	if !found {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "volume not found"}`))
		return
	}

	if len(alive) == 0 {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error": "no alive archive servers available"}`))
		return
	}

	data, code, err := r.proxyData(alive, uri)
	if err != nil {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(fmt.Sprintf(`{"error": "error getting data from archive server: %s"}`, err)))
		return
	}
	w.WriteHeader(code)
	w.Write(data)
}

func (r *Router) listVolumes(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	r.readerLock.RLock()
	response := volumeListResponse{Volumes: make([]volumeDesc, 0, len(r.readers))}
	for name, readers := range r.readers {
		alive := 0
		for _, reader := range readers {
			if reader.isAlive {
				alive++
			}
		}
		response.Volumes = append(response.Volumes, volumeDesc{Name: name, AliveInstances: alive})
	}
	r.readerLock.RUnlock()

	data, err := json.Marshal(response)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "marshalling error"}`))
		return
	}
	w.Write(data)
}

func (r *Router) listEntries(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(req)
	r.proxyRequest(w, vars["volume"], "/api/v1/entries")
}

func (r *Router) getEntry(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(req)
	r.proxyRequest(w, vars["volume"], "/api/v1/entries/"+vars["path"])
}
