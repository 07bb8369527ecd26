// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/SoftbearStudios/terrainmesh/server"
	"golang.org/x/net/netutil"
)

func main() {
	var (
		debug          bool
		maxCells       int
		maxConnections int
		port           int
	)

	flag.BoolVar(&debug, "debug", false, "log request timings")
	flag.IntVar(&maxCells, "max-cells", 256*256, "maximum grid cells per request")
	flag.IntVar(&maxConnections, "max-connections", 256, "maximum number of inbound TCP connections")
	flag.IntVar(&port, "port", 8192, "http service port")
	flag.Parse()

	if maxCells <= 0 {
		log.Fatal("invalid argument max-cells: ", maxCells)
	}

	s := server.New(rand.Reader, maxCells)
	s.SetDebug(debug)

	l, err := net.Listen("tcp", fmt.Sprint(":", port))
	if err != nil {
		log.Fatalf("Listen: %v", err)
	}
	defer l.Close()

	l = netutil.LimitListener(l, maxConnections)

	log.Println("terrain server started on port", port)
	log.Fatal("ListenAndServe: ", http.Serve(l, s.Handler()))
}
