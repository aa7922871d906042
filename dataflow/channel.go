package dataflow

import "sync"

// chanSender adapts a buffered Go channel to the Sender interface, closing
// exactly once.
type chanSender struct {
	ch     chan Event
	mu     sync.Mutex
	closed bool
}

func (s *chanSender) Send(ev Event) error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return nil
	}
	select {
	case s.ch <- ev:
	default:
		// A reference channel favors forward progress over delivery
		// guarantees under backpressure; production transports enforce
		// their own flow control.
	}
	return nil
}

func (s *chanSender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.ch)
	return nil
}

// chanReceiver adapts a buffered Go channel to the Receiver interface.
type chanReceiver struct {
	ch chan Event
}

func (r *chanReceiver) Recv() (Event, bool) {
	select {
	case ev, ok := <-r.ch:
		return ev, ok
	default:
		return nil, false
	}
}

// localChannelHub is an in-memory ChannelBuilder used by tests and by any
// embedder that runs all of a job's peers inside one process. Each peer of
// a job calls Build once during install; the hub lazily creates the shared
// channel set for that job on first access. This is a reference
// implementation only — the production wire protocol is an external
// collaborator.
type localChannelHub struct {
	mu      sync.Mutex
	entries map[ChannelID]*localChannelEntry
}

type localChannelEntry struct {
	// channels holds one inbox per peer index, plus one extra reserved
	// channel at position totalPeers, matching the total_peers+1 sender
	// contract.
	channels []chan Event
}

// NewLocalChannelHub returns a ChannelBuilder backed by in-memory buffered
// channels, scoped to the hub instance (one hub per test or per process).
func NewLocalChannelHub() ChannelBuilder {
	hub := &localChannelHub{entries: make(map[ChannelID]*localChannelEntry)}
	return hub.Build
}

func (h *localChannelHub) Build(id ChannelID, workerIndex, totalPeers uint32) (*ChannelResource, error) {
	h.mu.Lock()
	entry, ok := h.entries[id]
	if !ok {
		entry = &localChannelEntry{channels: make([]chan Event, totalPeers+1)}
		for i := range entry.channels {
			entry.channels[i] = make(chan Event, 256)
		}
		h.entries[id] = entry
	}
	h.mu.Unlock()

	senders := make([]Sender, len(entry.channels))
	for i, ch := range entry.channels {
		senders[i] = &chanSender{ch: ch}
	}

	return &ChannelResource{
		ID:       id,
		Senders:  senders,
		Receiver: &chanReceiver{ch: entry.channels[workerIndex]},
	}, nil
}

// localEventEmitter delivers events to the senders that remain after the
// caller removed its own self-sender.
type localEventEmitter struct {
	senders []Sender
}

// NewEventEmitter builds an EventEmitter from the channel's senders. Callers
// pass the slice with the self-sender already removed and closed.
func NewEventEmitter(senders []Sender) EventEmitter {
	return &localEventEmitter{senders: senders}
}

func (e *localEventEmitter) Emit(peerIndex uint32, ev Event) error {
	if int(peerIndex) >= len(e.senders) {
		return nil
	}
	return e.senders[peerIndex].Send(ev)
}

func (e *localEventEmitter) Close() error {
	var firstErr error
	for _, s := range e.senders {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
