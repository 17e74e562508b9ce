package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/tokenplay/server/core"
)

func main() {
	port := flag.Uint("port", 7373, "Server port")
	tickRate := flag.Int("tickrate", 20, "Server tick rate (updates per second)")
	name := flag.String("name", "Tokenplay Table", "Table display name")
	version := flag.String("version", "", "Required client version (empty = accept any)")
	masterURL := flag.String("master", "", "Table directory URL (empty = do not register)")
	address := flag.String("address", "", "Public address to advertise to the directory")
	maxPlayers := flag.Int("maxplayers", 8, "Advertised player capacity")
	flag.Parse()

	server := core.NewServer(*tickRate, *name, *version)

	var registration *core.Registration
	if *masterURL != "" {
		addr := *address
		if addr == "" {
			addr = fmt.Sprintf("localhost:%d", *port)
		}
		registration = core.NewRegistration(*masterURL, *name, addr, *version, *maxPlayers, server)
		registration.Start()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		if registration != nil {
			registration.Stop()
		}
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting table server %q on port %d (tick rate: %d/s, version: %s)",
		*name, *port, *tickRate, *version)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
