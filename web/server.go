package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/op/go-logging"

	"github.com/sombr/adatpack/adat"
	"github.com/sombr/adatpack/common"
	"github.com/sombr/adatpack/config"
)

// Server represents an http server exposing the contents
// of a single mounted ADAT package
type Server struct {
	bind string
	pkg  *adat.Package
}

var (
	log = logging.MustGetLogger("web")
)

// NewServer creates and configures a new Server instance
// based on a given mounted package
func NewServer(pkg *adat.Package, cfg *config.ServerCfg) *Server {
	s := &Server{
		bind: cfg.Bind,
		pkg:  pkg,
	}
	log.Infof("Server configured over a package with %d entries", pkg.NumEntries())
	return s
}

// Start creates and configures a http server with all necessary handlers,
// then starts ListenAndServe in background and returns the server
func (s *Server) Start() (*http.Server, error) {
	log.Info("Creating HTTP router")
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/info", common.JSONResponse(s.appInfo)).Methods("GET")
	r.HandleFunc("/api/v1/entries", common.JSONResponse(s.listEntries)).Methods("GET")
	r.HandleFunc("/api/v1/entries/{path:.+}", common.JSONResponse(s.getEntry)).Methods("GET")

	srv := &http.Server{
		Addr:    s.bind,
		Handler: r,
	}

	go func() {
		log.Infof("server is starting at %s", s.bind)
		err := srv.ListenAndServe()
		if err != nil {
			return
		}
	}()

	return srv, nil
}
