// Package sse implements a Server-Sent Events broker announcing store changes.
package sse

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
)

// Event types published by the API.
const (
	EventCollectionCreated = "collection.created"
	EventNoteCreated       = "note.created"
)

// Event is a store change. Collection scopes the event for filtered
// subscribers; zero means it concerns no single collection.
type Event struct {
	Type       string
	Collection int64
	Data       any
}

// Filter selects the events a subscriber receives.
type Filter struct {
	// Collection, when non-zero, restricts delivery to events scoped to that
	// collection or to no collection at all.
	Collection int64
}

func (f Filter) match(e Event) bool {
	return f.Collection == 0 || e.Collection == 0 || e.Collection == f.Collection
}

type subscription struct {
	ch     chan []byte
	filter Filter
}

// Broker fans store changes out to streaming clients.
//
// The client set and the event sequence are owned by the run goroutine;
// public methods reach it over channels.
type Broker struct {
	subscribeCh   chan subscription
	unsubscribeCh chan chan []byte
	publishCh     chan Event
	countReqCh    chan chan int

	stopCh  chan struct{}
	stopped chan struct{}
	closed  atomic.Bool
}

// NewBroker creates a broker and starts its event loop.
func NewBroker() *Broker {
	b := &Broker{
		subscribeCh:   make(chan subscription),
		unsubscribeCh: make(chan chan []byte),
		publishCh:     make(chan Event, 256),
		countReqCh:    make(chan chan int),
		stopCh:        make(chan struct{}),
		stopped:       make(chan struct{}),
	}

	go b.run()
	return b
}

// frame renders one event in text/event-stream form.
func frame(seq uint64, e Event) ([]byte, error) {
	payload, err := json.Marshal(e.Data)
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("id: %d\nevent: %s\ndata: %s\n\n", seq, e.Type, payload)), nil
}

func (b *Broker) run() {
	defer close(b.stopped)

	clients := make(map[chan []byte]Filter)
	var seq uint64

	for {
		select {
		case <-b.stopCh:
			for ch := range clients {
				close(ch)
			}
			return

		case sub := <-b.subscribeCh:
			clients[sub.ch] = sub.filter

		case ch := <-b.unsubscribeCh:
			if _, ok := clients[ch]; ok {
				delete(clients, ch)
				close(ch)
			}

		case event := <-b.publishCh:
			seq++
			raw, err := frame(seq, event)
			if err != nil {
				continue
			}
			for ch, f := range clients {
				if !f.match(event) {
					continue
				}
				select {
				case ch <- raw:
				default:
					// slow client, drop
				}
			}

		case resp := <-b.countReqCh:
			resp <- len(clients)
		}
	}
}

// Close stops the event loop and closes all client channels. It is safe to
// call more than once.
func (b *Broker) Close() {
	if b.closed.CompareAndSwap(false, true) {
		close(b.stopCh)
	}
	<-b.stopped
}

// Subscribe registers a client receiving events that match f. The returned
// channel is closed by Unsubscribe or Close.
func (b *Broker) Subscribe(f Filter) chan []byte {
	ch := make(chan []byte, 64)
	if b.closed.Load() {
		close(ch)
		return ch
	}

	select {
	case b.subscribeCh <- subscription{ch: ch, filter: f}:
	case <-b.stopped:
		close(ch)
	}
	return ch
}

// Unsubscribe removes a client and closes its channel.
func (b *Broker) Unsubscribe(ch chan []byte) {
	if b.closed.Load() {
		return
	}
	select {
	case b.unsubscribeCh <- ch:
	case <-b.stopped:
	}
}

// ClientCount returns the number of connected clients.
func (b *Broker) ClientCount() int {
	if b.closed.Load() {
		return 0
	}

	resp := make(chan int, 1)
	select {
	case b.countReqCh <- resp:
	case <-b.stopped:
		return 0
	}

	select {
	case n := <-resp:
		return n
	case <-b.stopped:
		return 0
	}
}

// Publish queues an event for delivery. Events published after Close are
// discarded.
func (b *Broker) Publish(event Event) {
	if b.closed.Load() {
		return
	}
	select {
	case b.publishCh <- event:
	case <-b.stopped:
	}
}

// ServeHTTP streams events to the caller. The optional collection_id query
// parameter narrows note events to one collection.
func (b *Broker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var f Filter
	if raw := r.URL.Query().Get("collection_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			http.Error(w, "collection_id must be a positive integer", http.StatusBadRequest)
			return
		}
		f.Collection = id
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch := b.Subscribe(f)
	defer b.Unsubscribe(ch)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			_, _ = w.Write(msg)
			flusher.Flush()
		}
	}
}
