package websocket

import (
	"sync"
	"time"

	"github.com/formbase/forms-go/models"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	sendBuffer = 16
)

// ResponseEvent is pushed to every owner watching a form when a new
// submission lands.
type ResponseEvent struct {
	FormID      string    `json:"form_id"`
	ResponseID  string    `json:"response_id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Subscription ties one websocket connection to a form's feed. Writes go
// through a buffered channel drained by a dedicated goroutine, so publishers
// never touch the connection directly.
type Subscription struct {
	formID string
	conn   *websocket.Conn
	send   chan ResponseEvent
	once   sync.Once
}

type feed struct {
	mu   sync.RWMutex
	subs map[string]map[*Subscription]bool
}

var responseFeed = &feed{subs: map[string]map[*Subscription]bool{}}

func Subscribe(formID string, conn *websocket.Conn) *Subscription {
	sub := &Subscription{
		formID: formID,
		conn:   conn,
		send:   make(chan ResponseEvent, sendBuffer),
	}

	responseFeed.mu.Lock()
	if responseFeed.subs[formID] == nil {
		responseFeed.subs[formID] = map[*Subscription]bool{}
	}
	responseFeed.subs[formID][sub] = true
	responseFeed.mu.Unlock()

	go sub.writeLoop()
	return sub
}

func (s *Subscription) writeLoop() {
	for event := range s.send {
		s.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := s.conn.WriteJSON(event); err != nil {
			s.Close()
			return
		}
	}
}

// Close unregisters the subscription and closes the connection. Safe to call
// more than once and from the write loop itself.
func (s *Subscription) Close() {
	s.once.Do(func() {
		responseFeed.mu.Lock()
		delete(responseFeed.subs[s.formID], s)
		if len(responseFeed.subs[s.formID]) == 0 {
			delete(responseFeed.subs, s.formID)
		}
		responseFeed.mu.Unlock()

		close(s.send)
		s.conn.Close()
	})
}

// PublishResponse fans the event out to the form's watchers. The send never
// blocks: a watcher whose buffer is full misses the event rather than
// stalling the submission path.
func PublishResponse(resp models.FormResponse) {
	event := ResponseEvent{
		FormID:      resp.FormID,
		ResponseID:  resp.ID,
		SubmittedAt: resp.SubmittedAt,
	}

	responseFeed.mu.RLock()
	defer responseFeed.mu.RUnlock()
	for sub := range responseFeed.subs[resp.FormID] {
		select {
		case sub.send <- event:
		default:
		}
	}
}
