package model

type ServerMessage struct {
	Setup     []Setup
	Snapshots []RenderModel
	Errors    []string
}

type Setup struct {
	Cols, Rows int
	SessionId  string
	ViewerKey  int32
}

type ClientMessage struct {
	Commands []Command
}
