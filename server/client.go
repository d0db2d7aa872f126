package server

import (
	"encoding/gob"
	"errors"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/gridpath/model"
)

var ErrNoSetup = errors.New("server sent no setup")

// RemoteCore drives a session on a comparator server. Commands go out as
// they are applied, snapshots come back asynchronously.
type RemoteCore struct {
	SessionId string
	ViewerKey int32

	conn    *websocket.Conn
	writeMu sync.Mutex

	mu       sync.Mutex
	snapshot model.RenderModel
	errs     []string
	err      error
	closed   chan struct{}
}

// Dial connects to url, ws://host/play for a new session or
// ws://host/play/<id> to join one, and waits for the setup message.
func Dial(url string) (*RemoteCore, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	mes, err := readMessage(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("read setup: %w", err)
	}
	if len(mes.Setup) == 0 || len(mes.Snapshots) == 0 {
		conn.Close()
		return nil, ErrNoSetup
	}
	rc := &RemoteCore{
		SessionId: mes.Setup[0].SessionId,
		ViewerKey: mes.Setup[0].ViewerKey,
		conn:      conn,
		snapshot:  mes.Snapshots[len(mes.Snapshots)-1],
		closed:    make(chan struct{}),
	}
	log.WithField("session", rc.SessionId).Infof("joined as viewer %d", rc.ViewerKey)
	go rc.loopRead()
	return rc, nil
}

func readMessage(conn *websocket.Conn) (model.ServerMessage, error) {
	var mes model.ServerMessage
	_, r, err := conn.NextReader()
	if err != nil {
		return mes, err
	}
	err = gob.NewDecoder(r).Decode(&mes)
	return mes, err
}

func (rc *RemoteCore) loopRead() {
	defer close(rc.closed)
	for {
		mes, err := readMessage(rc.conn)
		if err != nil {
			rc.mu.Lock()
			rc.err = err
			rc.mu.Unlock()
			log.Debugf("RemoteCore read ended: %v", err)
			return
		}
		rc.mu.Lock()
		if n := len(mes.Snapshots); n > 0 {
			rc.snapshot = mes.Snapshots[n-1]
		}
		rc.errs = append(rc.errs, mes.Errors...)
		rc.mu.Unlock()
		for _, e := range mes.Errors {
			log.Warnf("server rejected command: %s", e)
		}
	}
}

func (rc *RemoteCore) Apply(cmd model.Command) error {
	rc.mu.Lock()
	err := rc.err
	rc.mu.Unlock()
	if err != nil {
		return fmt.Errorf("connection lost: %w", err)
	}

	rc.writeMu.Lock()
	defer rc.writeMu.Unlock()
	w, err := rc.conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		return err
	}
	if err = gob.NewEncoder(w).Encode(model.ClientMessage{Commands: []model.Command{cmd}}); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// Snapshot is the latest render model the server sent.
func (rc *RemoteCore) Snapshot() model.RenderModel {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.snapshot
}

// Rejected returns and forgets the errors the server reported so far.
func (rc *RemoteCore) Rejected() []string {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	errs := rc.errs
	rc.errs = nil
	return errs
}

func (rc *RemoteCore) Close() error {
	rc.writeMu.Lock()
	rc.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	rc.writeMu.Unlock()
	err := rc.conn.Close()
	<-rc.closed
	return err
}
