package main

import (
	"net/http"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/gridpath/config"
	"github.com/zucenko/gridpath/server"
)

type Server struct {
	router           *way.Router
	ComparatorServer *server.ComparatorServer
}

func main() {
	cfg := config.Load()
	cfg.Apply()

	s := Server{
		ComparatorServer: server.NewComparatorServer(),
	}
	go s.ComparatorServer.Loop()
	s.router = server.NewRouter(s.ComparatorServer)

	log.Printf("listening on port %s", cfg.Port)
	log.Fatalln(http.ListenAndServe(":"+cfg.Port, s.router))
}
