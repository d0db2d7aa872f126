package server

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/zucenko/gridpath/model"
)

type ComparatorServer struct {
	Sessions        map[string]*Session
	SessionRequests chan SessionRequest
	Upgrader        *websocket.Upgrader
}

type SessionState int

const (
	SS_NEW SessionState = iota
	SS_WATCHED
	SS_IDLE
)

// Session owns one comparator core. Only Loop touches the controller, so
// every command is applied to completion before the next one is read.
type Session struct {
	State                 SessionState
	Id                    string
	Controller            *model.Controller
	ViewerSessions        []*ViewerSession
	Errors                chan int32
	Commands              chan ViewerCommand
	ViewerConnectRequests chan ViewerConnectRequest
	StateRequests         chan chan model.RenderModel
	nextViewerKey         int32
}

type ViewerSessionState int

const (
	VS_NEW ViewerSessionState = iota + 1
	VS_WATCH
	VS_OVER
)

type ViewerSession struct {
	State   ViewerSessionState
	Key     int32
	Session *Session
	Conn    *websocket.Conn
	Done    chan struct{}

	MessagesToSend chan model.ServerMessage

	DebugInMessages  int
	DebugOutMessages int
	DebugLastMessage time.Time
	DebugLastPing    time.Time
	DebugPings       int
}
