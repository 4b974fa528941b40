// Package server exposes the planner to browser clients over websocket.
package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"diveplan/config"
	"diveplan/model"
	"diveplan/planner"
)

type Server struct {
	cfg      *config.Config
	upgrader websocket.Upgrader
	planner  *planner.Planner
}

func NewServer(cfg *config.Config, upgrader websocket.Upgrader) *Server {
	return &Server{
		cfg:      cfg,
		upgrader: upgrader,
		planner:  planner.New(),
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithField("error", err).Error("upgrade failed")
		return
	}
	defer conn.Close()

	hub := NewHub(conn, s.cfg, s.planner)
	defer hub.close()
	go hub.handleRequest()
	go hub.handleResponse()

	hub.log.Info("client connected")
	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				hub.log.WithField("error", err).Warn("connection lost")
			}
			break
		}
		hub.msg <- msg
	}
	hub.log.Info("client disconnected")
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

func (s *Server) Serve() error {
	log.WithField("addr", s.cfg.Addr).Info("listening")
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}
