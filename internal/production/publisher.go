// Package production provides trace integrations for turingx machines:
// step publishing, trace recording and trace encoding.
package production

import (
	"github.com/comalice/turingx"
)

// ChannelPublisher is an Observer that forwards step events to a Go channel.
// Non-blocking publish with drop on backpressure.
type ChannelPublisher struct {
	ch      chan<- turingx.StepEvent
	dropped int
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- turingx.StepEvent) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) OnStep(evt turingx.StepEvent) {
	select {
	case p.ch <- evt:
	default:
		p.dropped++
	}
}

// Dropped counts events discarded because the channel was full.
func (p *ChannelPublisher) Dropped() int {
	return p.dropped
}

func (p *ChannelPublisher) Close() error {
	close(p.ch)
	return nil
}

type fanout []turingx.Observer

func (f fanout) OnStep(evt turingx.StepEvent) {
	for _, o := range f {
		o.OnStep(evt)
	}
}

// Fanout delivers every step event to each observer in order.
func Fanout(observers ...turingx.Observer) turingx.Observer {
	var f fanout
	for _, o := range observers {
		if o != nil {
			f = append(f, o)
		}
	}
	return f
}
