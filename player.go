//go:build darwin || linux

package gst

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Outcome describes how a playback run ended.
type Outcome struct {
	Type   MessageType // MessageEOS or MessageError
	Source string      // Name of the element that posted the message
	Error  string      // Error text (error outcomes only)
	Debug  string      // Debug details (error outcomes only)
}

// EOS reports whether playback ended with end-of-stream.
func (o *Outcome) EOS() bool {
	return o.Type == MessageEOS
}

// PlayerConfig configures a Player.
type PlayerConfig struct {
	Description string      // Pipeline description in gst-launch grammar
	Logger      *zap.Logger // Optional; defaults to the package logger
}

// Player drives a single pipeline through build -> play -> wait -> stop.
// It handles exactly one pipeline at a time and is not designed for
// concurrent reuse.
type Player struct {
	pipeline *Pipeline
	bus      *Bus
	logger   *zap.Logger

	mu     sync.Mutex
	closed bool
}

// NewPlayer builds the pipeline from the configured description and
// obtains its bus. The caller must Close the player on every exit path.
func NewPlayer(config PlayerConfig) (*Player, error) {
	if config.Description == "" {
		return nil, errors.New("pipeline description is required")
	}

	log := config.Logger
	if log == nil {
		log = Logger()
	}

	pipeline, err := ParseLaunch(config.Description)
	if err != nil {
		// The wrapped GError caches its text, so the native object can go.
		var gerr *GError
		if errors.As(err, &gerr) {
			gerr.Free()
		}
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}

	bus, err := pipeline.Bus()
	if err != nil {
		pipeline.Close()
		return nil, err
	}

	return &Player{pipeline: pipeline, bus: bus, logger: log}, nil
}

// Pipeline returns the owned pipeline handle.
func (p *Player) Pipeline() *Pipeline {
	return p.pipeline
}

// Play transitions the pipeline to the playing state.
func (p *Player) Play() error {
	_, err := p.pipeline.SetState(StatePlaying)
	return err
}

// Wait blocks until an error or end-of-stream message arrives, or the
// timeout elapses. The caller owns the returned message.
func (p *Player) Wait(timeout ClockTime) (*Message, error) {
	return p.bus.TimedPopFiltered(timeout, MessageError|MessageEOS)
}

// Run walks the full playback flow: start playing, block until error or
// end-of-stream, classify the message. The pipeline is left running;
// call Close to quiesce it.
func (p *Player) Run(timeout ClockTime) (*Outcome, error) {
	if err := p.Play(); err != nil {
		return nil, err
	}

	msg, err := p.Wait(timeout)
	if err != nil {
		return nil, err
	}
	defer msg.Unref()

	out := &Outcome{Type: msg.Type(), Source: msg.Source()}
	switch out.Type {
	case MessageError:
		errMsg, debug, perr := msg.ParseError()
		if perr != nil {
			return nil, perr
		}
		out.Error, out.Debug = errMsg, debug
	case MessageEOS:
		// Nothing to extract.
	default:
		// Unreachable with the Error|EOS mask; returned untouched.
	}
	return out, nil
}

// Close quiesces the pipeline and releases every handle, best effort:
// a failed transition to the null state is logged and reported, but the
// handles are released regardless. Safe to call multiple times.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	var errs []error
	if p.pipeline.Valid() {
		if _, err := p.pipeline.SetState(StateNull); err != nil {
			p.logger.Warn("unable to set the pipeline to the null state", zap.Error(err))
			errs = append(errs, err)
		}
	}
	if err := p.bus.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := p.pipeline.Close(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
