// Command api runs the careers/blog/contact HTTP backend.
package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/logger"
	"github.com/PiyushSRAI/sun-robotics-launchpad/internal/server"
)

func main() {
	logger.Setup()

	srv, err := server.NewServer()
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Infof("Listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
