package server

import (
	"encoding/json"
	"sync"

	"github.com/ansel1/merry"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"diveplan/config"
	"diveplan/model"
	"diveplan/planner"
)

var ErrUnknownMessage = merry.New("unknown message type")

// Hub serves one client connection. Requests are converted to plans and handed to the
// dispatcher, the hub receives the results as dispatcher listener.
type Hub struct {
	conn       *websocket.Conn
	cfg        *config.Config
	dispatcher *planner.Dispatcher
	log        log.FieldLogger
	// request
	msg chan model.Msg
	// response
	replies chan model.Msg

	done      chan struct{}
	closeOnce sync.Once
}

func NewHub(conn *websocket.Conn, cfg *config.Config, p *planner.Planner) *Hub {
	h := &Hub{
		conn:    conn,
		cfg:     cfg,
		log:     log.WithField("remote", conn.RemoteAddr().String()),
		msg:     make(chan model.Msg, 10),
		replies: make(chan model.Msg, 10),
		done:    make(chan struct{}),
	}
	h.dispatcher = planner.NewDispatcher(p, h, cfg.ReloadDelay)
	return h
}

func (h *Hub) Calculated(result planner.Result) {
	data, err := json.Marshal(model.FromResult(result))
	if err != nil {
		h.Failed(err)
		return
	}
	h.reply(model.Msg{Type: model.MsgCalculated, Content: string(data)})
}

func (h *Hub) Failed(err error) {
	h.reply(model.Msg{Type: model.MsgError, Content: err.Error()})
}

func (h *Hub) reply(msg model.Msg) {
	select {
	case h.replies <- msg:
	case <-h.done:
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.replies:
			if err := h.conn.WriteJSON(&reply); err != nil {
				h.log.WithFields(log.Fields{
					"type":  reply.Type,
					"error": err,
				}).Error("unable to write reply")
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			h.handle(msg)
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handle(msg model.Msg) {
	h.log.WithField("type", msg.Type).Debug("request")

	switch msg.Type {
	case model.MsgPlan:
		plan, err := h.parsePlan(msg.Content)
		if err != nil {
			h.log.WithField("error", err).Warn("invalid plan")
			h.Failed(err)
			return
		}
		h.dispatcher.Submit(plan)
	case model.MsgStop:
		h.dispatcher.Cancel()
		h.reply(model.Msg{
			Type:    model.MsgStopped,
			Content: "stopped",
		})
	default:
		h.Failed(ErrUnknownMessage.Here().Appendf("%q", msg.Type))
	}
}

func (h *Hub) parsePlan(content string) (planner.Plan, error) {
	var request model.PlanRequest
	if err := json.Unmarshal([]byte(content), &request); err != nil {
		return planner.Plan{}, merry.Prepend(err, "unable to parse plan")
	}
	return request.ToPlan(h.cfg.Options, h.cfg.Diver)
}

func (h *Hub) close() {
	h.closeOnce.Do(func() {
		close(h.done)
		h.dispatcher.Close()
	})
}
