package server

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/zucenko/gridpath/model"
)

const HTTP_SUCCESS = 200
const HTTP_BAD_REQUEST = 400
const HTTP_NOT_FOUND = 404
const HTTP_TIMEOUT = 408
const HTTP_SERVER_ERR = 503

type ResponseCode int

const (
	SESSION_READY ResponseCode = iota
	SESSION_NOT_FOUND
	SESSION_INVALIDE
)

func (h ResponseCode) ToHttp() int {
	switch h {
	case SESSION_READY:
		return HTTP_SUCCESS
	case SESSION_NOT_FOUND:
		return HTTP_NOT_FOUND
	case SESSION_INVALIDE:
		return HTTP_BAD_REQUEST
	default:
		panic(h)
	}
}

func (ss SessionState) Name() string {
	switch ss {
	case SS_NEW:
		return "SS_NEW"
	case SS_WATCHED:
		return "SS_WATCHED"
	case SS_IDLE:
		return "SS_IDLE"
	default:
		return fmt.Sprintf("n/a:%d", ss)
	}
}

func (vs ViewerSessionState) Name() string {
	switch vs {
	case VS_NEW:
		return "NEW"
	case VS_WATCH:
		return "WATCH"
	case VS_OVER:
		return "OVER"
	default:
		return "N/A"
	}
}

type SessionAwaiting struct {
	ResponseCode ResponseCode
	Session      *Session
}

// SessionRequest asks the server loop for a session. An empty Id creates one.
type SessionRequest struct {
	Id              string
	SessionAwaiting chan SessionAwaiting
}

type ViewerConnectRequest struct {
	Con  *websocket.Conn
	Done chan struct{}
}

type ViewerCommand struct {
	Viewer   int32
	Commands []model.Command
}
