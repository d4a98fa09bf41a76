package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sombr/adatpack/common"
)

// InfoResponse is a json-marked-up structure for info handler
type InfoResponse struct {
	AppName       string `json:"app_name"`
	FormatVersion int    `json:"format_version"`
	NumEntries    int    `json:"num_entries"`
}

// EntryItem is a json-marked-up TOC record
type EntryItem struct {
	Path           string `json:"path"`
	Size           int    `json:"size"`
	CompressedSize int    `json:"compressed_size"`
}

// EntryListResponse is a json-marked-up structure for the TOC listing
type EntryListResponse struct {
	Entries []*EntryItem `json:"entries"`
}

// EntryContentResponse is a json-marked-up structure holding
// a decompressed entry
type EntryContentResponse struct {
	Path string `json:"path"`
	Size int    `json:"size"`
	Data string `json:"data"`
}

func (s *Server) appInfo(r *http.Request) (interface{}, error) {
	return &InfoResponse{
		AppName:       "adatserver",
		FormatVersion: s.pkg.Version(),
		NumEntries:    s.pkg.NumEntries(),
	}, nil
}

func (s *Server) listEntries(r *http.Request) (interface{}, error) {
	paths := s.pkg.ListEntries()
	elr := &EntryListResponse{Entries: make([]*EntryItem, 0, len(paths))}
	for _, path := range paths {
		info, err := s.pkg.Stat(path)
		if err != nil {
			return nil, common.NewHTTPError(http.StatusInternalServerError,
				"error reading TOC record of '%s': %s", path, err)
		}
		elr.Entries = append(elr.Entries, &EntryItem{
			Path:           info.Path,
			Size:           info.Size,
			CompressedSize: info.CompressedSize,
		})
	}
	return elr, nil
}

func (s *Server) getEntry(r *http.Request) (interface{}, error) {
	vars := mux.Vars(r)
	path := vars["path"]

	info, err := s.pkg.Stat(path)
	if err != nil {
		return nil, common.NewHTTPError(http.StatusNotFound, "entry '%s' not found", path)
	}

	data, err := s.pkg.ReadEntry(path)
	if err != nil {
		return nil, common.NewHTTPError(http.StatusInternalServerError,
			"error reading entry '%s': %s", path, err)
	}

	return &EntryContentResponse{
		Path: info.Path,
		Size: info.Size,
		Data: string(data),
	}, nil
}
