package server

import "github.com/matryer/way"

const URI_PLAY = "/play"
const URI_JOIN = "/play/:session"
const URI_STATE = "/state/:session"

func NewRouter(s *ComparatorServer) *way.Router {
	router := way.NewRouter()
	router.HandleFunc("GET", URI_PLAY, s.HandleHttpCall())
	router.HandleFunc("GET", URI_JOIN, s.HandleHttpCall())
	router.HandleFunc("GET", URI_STATE, s.HandleState())
	return router
}
