// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"io"
	"log"
	"net/http"

	"github.com/SoftbearStudios/terrainmesh/generator"
)

// Server generates terrain for websocket clients.
type Server struct {
	entropy    io.Reader
	maxCells   int
	statusJSON []byte
	debug      bool // log how long each request took
}

type status struct {
	Default  generator.Config `json:"default"`
	MaxCells int              `json:"maxCells"`
	Sources  []generator.Kind `json:"sources"`
}

// New creates a Server. entropy supplies seeds for requests that omit one
// and must be safe for concurrent use. Requests for more than maxCells
// cells are refused.
func New(entropy io.Reader, maxCells int) *Server {
	statusJSON, err := json.Marshal(status{
		Default:  generator.Default(),
		MaxCells: maxCells,
		Sources:  []generator.Kind{generator.KindNoise, generator.KindPerlin, generator.KindSimplex, generator.KindFlat},
	})
	if err != nil {
		panic(err)
	}

	return &Server{
		entropy:    entropy,
		maxCells:   maxCells,
		statusJSON: statusJSON,
	}
}

// SetDebug enables per request timing logs. Call it before serving.
func (s *Server) SetDebug(debug bool) {
	s.debug = debug
}

func (s *Server) ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(s.statusJSON)
}

func (s *Server) ServeSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade error", err)
		return
	}

	NewSocketClient(s, conn).Init()
}

// Handler routes / to ServeIndex and /ws to ServeSocket.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.ServeIndex)
	mux.HandleFunc("/ws", s.ServeSocket)
	return mux
}
