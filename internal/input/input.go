package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals send no key-up events, so holding relies on auto-repeat.
const keyHoldDuration = 60 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Fire    bool
	Restart bool
	Pressed []byte
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit    time.Time
	left    time.Time
	right   time.Time
	fire    time.Time
	restart time.Time
	closed  bool
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The stream reports Quit once r is exhausted.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.state.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	return s.apply(buf, time.Now())
}

// apply parses buf, updates the key timestamps and builds the frame input.
// Keys count as pressed if seen within keyHoldDuration of now.
func (s *Stream) apply(buf []byte, now time.Time) Input {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			case 'A', 'B': // Up and down arrows do nothing
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	return Input{
		Quit:    s.state.closed || now.Sub(s.state.quit) < keyHoldDuration,
		Left:    now.Sub(s.state.left) < keyHoldDuration,
		Right:   now.Sub(s.state.right) < keyHoldDuration,
		Fire:    now.Sub(s.state.fire) < keyHoldDuration,
		Restart: now.Sub(s.state.restart) < keyHoldDuration,
		Pressed: buf,
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl+C arrives as a byte in raw mode
		state.quit = now
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case ' ', 'k', 'K', 'w', 'W':
		state.fire = now
	case 'r', 'R', '\n', '\r':
		state.restart = now
	}
}
