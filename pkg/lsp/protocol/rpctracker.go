package protocol

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/creachadair/jrpc2"
)

// RPCMessage is one request or response seen by an RPCTracker.
type RPCMessage struct {
	Method   string
	Request  *jrpc2.Request
	Response *jrpc2.Response
	Time     time.Time
}

// RPCTracker records the traffic of a connection so tests can wait on it.
type RPCTracker struct {
	mu sync.RWMutex

	messages     []RPCMessage
	subs         map[chan RPCMessage]struct{}
	knownMethods map[string]string
}

var _ jrpc2.RPCLogger = (*RPCTracker)(nil)

func NewRPCTracker() *RPCTracker {
	return &RPCTracker{
		subs:         make(map[chan RPCMessage]struct{}),
		knownMethods: make(map[string]string),
	}
}

func (t *RPCTracker) LogRequest(_ context.Context, req *jrpc2.Request) {
	t.mu.Lock()
	t.knownMethods[req.ID()] = req.Method()
	t.mu.Unlock()
	t.Track(RPCMessage{Method: req.Method(), Request: req})
}

func (t *RPCTracker) LogResponse(_ context.Context, resp *jrpc2.Response) {
	t.mu.RLock()
	method := t.knownMethods[resp.ID()]
	t.mu.RUnlock()
	t.Track(RPCMessage{Method: method, Response: resp})
}

func (t *RPCTracker) Track(msg RPCMessage) {
	if t == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	msg.Time = time.Now()
	t.messages = append(t.messages, msg)

	for ch := range t.subs {
		select {
		case ch <- msg:
		default:
		}
	}
}

func (t *RPCTracker) Messages() []RPCMessage {
	if t == nil {
		return nil
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.messages)
}

func (t *RPCTracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = nil
}

func (t *RPCTracker) subscribe() (chan RPCMessage, func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ch := make(chan RPCMessage, 16)
	t.subs[ch] = struct{}{}
	return ch, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.subs, ch)
	}
}

// WaitForMethod blocks until count messages for method have been tracked
// or the timeout passes.
func (t *RPCTracker) WaitForMethod(method string, count int, timeout time.Duration) ([]RPCMessage, bool) {
	ch, unsub := t.subscribe()
	defer unsub()

	match := func(m RPCMessage) bool { return m.Method == method }

	result := slices.DeleteFunc(t.Messages(), func(m RPCMessage) bool { return !match(m) })
	if len(result) >= count {
		return result, true
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case msg := <-ch:
			if match(msg) {
				result = append(result, msg)
			}
			if len(result) >= count {
				return result, true
			}
		case <-timer.C:
			return result, false
		}
	}
}
