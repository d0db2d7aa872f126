package server

import (
	"encoding/gob"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/gridpath/model"
)

const timeout = 200 * time.Millisecond

func NewComparatorServer() *ComparatorServer {
	return &ComparatorServer{
		Sessions:        make(map[string]*Session),
		SessionRequests: make(chan SessionRequest),
		Upgrader:        &websocket.Upgrader{},
	}
}

// requestSession asks the server loop for the session with id, or for a new
// one when id is empty.
func (s *ComparatorServer) requestSession(id string) (SessionAwaiting, bool) {
	sas := make(chan SessionAwaiting, 1)
	select {
	case s.SessionRequests <- SessionRequest{Id: id, SessionAwaiting: sas}:
	case <-time.After(timeout):
		log.Warn("SessionRequests TIMEOUTED")
		return SessionAwaiting{}, false
	}
	select {
	case sa := <-sas:
		return sa, true
	case <-time.After(timeout):
		log.Warn("SessionAwaiting <- TIMEOUTED")
		return SessionAwaiting{}, false
	}
}

// HandleHttpCall upgrades /play (new session) and /play/:session (join) to a
// websocket and keeps the request open until the viewer leaves.
func (s *ComparatorServer) HandleHttpCall() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := way.Param(r.Context(), "session")
		log.WithField("session", id).Info("HandleHttpCall - connection received")

		sa, ok := s.requestSession(id)
		if !ok {
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}
		if sa.ResponseCode != SESSION_READY {
			log.Warnf("HandleHttpCall session %q: code %d", id, sa.ResponseCode)
			w.WriteHeader(sa.ResponseCode.ToHttp())
			return
		}

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade already answered the request
			log.Warnf("HandleHttpCall websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		done := make(chan struct{})
		select {
		case sa.Session.ViewerConnectRequests <- ViewerConnectRequest{Con: con, Done: done}:
		case <-time.After(timeout):
			log.Warn("ViewerConnectRequests TIMEOUTED")
			return
		}

		<-done
		log.WithField("session", sa.Session.Id).Info("HandleHttpCall viewer left")
	}
}

// HandleState answers the render model of a session as JSON.
func (s *ComparatorServer) HandleState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := way.Param(r.Context(), "session")
		if id == "" {
			w.WriteHeader(SESSION_INVALIDE.ToHttp())
			return
		}
		sa, ok := s.requestSession(id)
		if !ok {
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}
		if sa.ResponseCode != SESSION_READY {
			w.WriteHeader(sa.ResponseCode.ToHttp())
			return
		}

		reply := make(chan model.RenderModel, 1)
		select {
		case sa.Session.StateRequests <- reply:
		case <-time.After(timeout):
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}
		var rm model.RenderModel
		select {
		case rm = <-reply:
		case <-time.After(timeout):
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(NewStateView(sa.Session.Id, rm)); err != nil {
			log.Warnf("HandleState encode %v", err)
		}
	}
}

func (s *ComparatorServer) Loop() {
	log.Info("ComparatorServer.Loop starting")
	for req := range s.SessionRequests {
		if req.Id != "" {
			gs, found := s.Sessions[req.Id]
			if !found {
				req.SessionAwaiting <- SessionAwaiting{ResponseCode: SESSION_NOT_FOUND}
				continue
			}
			req.SessionAwaiting <- SessionAwaiting{ResponseCode: SESSION_READY, Session: gs}
			continue
		}

		gs := NewSession(uuid.New().String())
		log.WithField("session", gs.Id).Info("create Session")
		go gs.Loop()
		s.Sessions[gs.Id] = gs
		req.SessionAwaiting <- SessionAwaiting{ResponseCode: SESSION_READY, Session: gs}
	}
}

func NewSession(id string) *Session {
	return &Session{
		State:                 SS_NEW,
		Id:                    id,
		Controller:            model.NewController(),
		ViewerSessions:        make([]*ViewerSession, 0),
		Errors:                make(chan int32),
		Commands:              make(chan ViewerCommand),
		ViewerConnectRequests: make(chan ViewerConnectRequest),
		StateRequests:         make(chan chan model.RenderModel),
	}
}

func (gs *Session) Loop() {
	logger := log.WithField("session", gs.Id)
	logger.Info("Session.Loop start")
	for {
		select {
		case vcr := <-gs.ViewerConnectRequests:
			vs := gs.addViewer(vcr.Con, vcr.Done)
			gs.State = SS_WATCHED
			logger.Infof("Session.Loop viewer %d joined, %d watching", vs.Key, len(gs.ViewerSessions))
			gs.send(vs, gs.MakeSetupMessage(vs))
		case key := <-gs.Errors:
			gs.removeViewer(key)
			if len(gs.ViewerSessions) == 0 {
				gs.State = SS_IDLE
			}
		case vc := <-gs.Commands:
			errs := gs.Turn(vc)
			snapshot := gs.Controller.Snapshot()
			for _, vs := range gs.ViewerSessions {
				mes := model.ServerMessage{Snapshots: []model.RenderModel{snapshot}}
				if vs.Key == vc.Viewer {
					mes.Errors = errs
				}
				gs.send(vs, mes)
			}
		case reply := <-gs.StateRequests:
			reply <- gs.Controller.Snapshot()
		}
	}
}

// Turn applies the commands of one viewer message in order and returns the
// messages of the ones that were rejected.
func (gs *Session) Turn(vc ViewerCommand) []string {
	var errs []string
	for _, cmd := range vc.Commands {
		if err := gs.Controller.Apply(cmd); err != nil {
			log.WithFields(log.Fields{
				"session": gs.Id,
				"viewer":  vc.Viewer,
				"command": cmd.Kind.Name(),
			}).Warnf("rejected command: %v", err)
			errs = append(errs, err.Error())
		}
	}
	return errs
}

// send never blocks the session loop. When the viewer lags behind, the oldest
// queued message is folded into the new one and its snapshot is dropped.
func (gs *Session) send(vs *ViewerSession, mes model.ServerMessage) {
	for {
		select {
		case vs.MessagesToSend <- mes:
			return
		default:
		}
		select {
		case old := <-vs.MessagesToSend:
			log.Debugf("Session.send viewer %d MessagesToSend FULL, dropping stale snapshot", vs.Key)
			mes.Setup = append(old.Setup, mes.Setup...)
			mes.Errors = append(old.Errors, mes.Errors...)
		default:
		}
	}
}

func (gs *Session) MakeSetupMessage(vs *ViewerSession) model.ServerMessage {
	return model.ServerMessage{
		Setup: []model.Setup{{
			Cols:      model.COLS,
			Rows:      model.ROWS,
			SessionId: gs.Id,
			ViewerKey: vs.Key,
		}},
		Snapshots: []model.RenderModel{gs.Controller.Snapshot()},
	}
}

func (gs *Session) addViewer(conn *websocket.Conn, done chan struct{}) *ViewerSession {
	gs.nextViewerKey++
	vs := &ViewerSession{
		State:          VS_NEW,
		Key:            gs.nextViewerKey,
		Session:        gs,
		Conn:           conn,
		Done:           done,
		MessagesToSend: make(chan model.ServerMessage, 10),
	}
	conn.SetPingHandler(
		func(message string) error {
			err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
			vs.DebugLastPing = time.Now()
			vs.DebugPings++
			if err == websocket.ErrCloseSent {
				return nil
			} else if e, ok := err.(net.Error); ok && e.Temporary() {
				return nil
			}
			return err
		})
	vs.State = VS_WATCH
	go vs.LoopChannelRead()
	go vs.LoopChannelWrite()
	gs.ViewerSessions = append(gs.ViewerSessions, vs)
	return vs
}

func (gs *Session) removeViewer(key int32) {
	for i, vs := range gs.ViewerSessions {
		if vs.Key != key {
			continue
		}
		vs.State = VS_OVER
		close(vs.Done)
		gs.ViewerSessions = append(gs.ViewerSessions[:i], gs.ViewerSessions[i+1:]...)
		log.WithField("session", gs.Id).Infof("viewer %d removed (%s)", key, vs.State.Name())
		return
	}
}

func (vs *ViewerSession) fail() {
	select {
	case vs.Session.Errors <- vs.Key:
	case <-vs.Done:
	}
}

func (vs *ViewerSession) LoopChannelRead() {
	log.Debugf("viewer %d LoopChannelRead STARTED", vs.Key)
	for {
		_, r, err := vs.Conn.NextReader()
		if err != nil {
			log.Debugf("viewer %d LoopChannelRead err reading message from Conn %v", vs.Key, err)
			vs.fail()
			break
		}
		cm := &model.ClientMessage{}
		if err = gob.NewDecoder(r).Decode(cm); err != nil {
			log.Warnf("viewer %d cant decode %v", vs.Key, err)
			vs.fail()
			break
		}
		vs.DebugLastMessage = time.Now()
		vs.DebugInMessages++

		select {
		case vs.Session.Commands <- ViewerCommand{Viewer: vs.Key, Commands: cm.Commands}:
		case <-vs.Done:
			return
		}
	}
	log.Debugf("viewer %d LoopChannelRead ENDED", vs.Key)
}

// LoopChannelWrite only consumes, a full buffer never blocks the session.
func (vs *ViewerSession) LoopChannelWrite() {
	log.Debugf("viewer %d LoopChannelWrite STARTED", vs.Key)
loop:
	for {
		select {
		case <-vs.Done:
			break loop
		case mes := <-vs.MessagesToSend:
			w, err := vs.Conn.NextWriter(websocket.BinaryMessage)
			if err != nil {
				log.Warnf("viewer %d LoopChannelWrite cant get writer %v", vs.Key, err)
				vs.fail()
				break loop
			}
			if err = gob.NewEncoder(w).Encode(mes); err != nil {
				log.Warnf("viewer %d LoopChannelWrite cant encode %v", vs.Key, err)
				vs.fail()
				break loop
			}
			if err = w.Close(); err != nil {
				log.Warnf("viewer %d LoopChannelWrite cant flush %v", vs.Key, err)
				vs.fail()
				break loop
			}
			vs.DebugOutMessages++
		}
	}
	log.Debugf("viewer %d LoopChannelWrite ENDED", vs.Key)
}
