// Package keyboard bridges raw stdin into the cabinet's input latches. It
// owns the only goroutine in this emulator: everything else runs on the
// single thread driving Step, since the 8080 core is not safe for
// concurrent access. The port device's input latches, which both sides
// touch, are guarded by its own mutex.
//
// Grounded on IntuitionEngine's TerminalHost (terminal_host.go): raw-mode
// stdin, a background read loop, and an explicit Stop that restores the
// terminal.
package keyboard

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/BlazingBBQ/8080-emulator/pkg/machine"
)

// Bindings maps ASCII keys to cabinet buttons. DefaultBindings returns
// the default Space Invaders control scheme.
type Bindings struct {
	Credit, Start1P, Start2P   byte
	P1Left, P1Right, P1Shoot   byte
	P2Left, P2Right, P2Shoot   byte
	Quit                       byte
}

// DefaultBindings is the arcade-convention-adjacent scheme this emulator
// ships with: arrow-ish letters for movement, space to shoot.
func DefaultBindings() Bindings {
	return Bindings{
		Credit:  'c',
		Start1P: '1',
		Start2P: '2',
		P1Left:  'a',
		P1Right: 'd',
		P1Shoot: ' ',
		P2Left:  'j',
		P2Right: 'l',
		P2Shoot: 'k',
		Quit:    'q',
	}
}

// Reader puts stdin in raw mode and translates keystrokes into port writes
// on the machine's input latches. Raw terminal input gives no key-up
// events, so ports are pulsed: each keystroke sets its button bit, and
// ClearPulses, called by the driver once per frame, clears every button
// bit (credit, start, movement and shoot) whether or not the key repeated.
type Reader struct {
	m        *machine.Machine
	bindings Bindings

	fd           int
	oldTermState *term.State
	nonblockSet  bool

	stopCh  chan struct{}
	done    chan struct{}
	stopped sync.Once

	QuitRequested chan struct{}
}

// NewReader builds a Reader that will drive m's Ports once Start is
// called.
func NewReader(m *machine.Machine, bindings Bindings) *Reader {
	return &Reader{
		m:             m,
		bindings:      bindings,
		stopCh:        make(chan struct{}),
		done:          make(chan struct{}),
		QuitRequested: make(chan struct{}, 1),
	}
}

// Start puts stdin into raw, non-blocking mode and begins routing
// keystrokes in a background goroutine. Call Stop to restore the
// terminal.
func (r *Reader) Start() error {
	r.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(r.fd)
	if err != nil {
		close(r.done)
		return fmt.Errorf("keyboard: failed to set raw mode: %w", err)
	}
	r.oldTermState = oldState

	if err := syscall.SetNonblock(r.fd, true); err != nil {
		_ = term.Restore(r.fd, r.oldTermState)
		r.oldTermState = nil
		close(r.done)
		return fmt.Errorf("keyboard: failed to set nonblocking stdin: %w", err)
	}
	r.nonblockSet = true

	go r.loop()
	return nil
}

func (r *Reader) loop() {
	defer close(r.done)
	buf := make([]byte, 1)

	for {
		select {
		case <-r.stopCh:
			return
		default:
		}

		n, err := syscall.Read(r.fd, buf)
		if n > 0 {
			r.route(buf[0])
		}
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err != nil {
			return
		}
		if n == 0 {
			time.Sleep(5 * time.Millisecond)
		}
	}
}

// route runs on the background read goroutine; it only ever touches the
// port device through its locked Or/AndNot accessors, since ClearPulses
// and every Step's ReadPort/WritePort call run concurrently on the main
// goroutine.
func (r *Reader) route(b byte) {
	p := r.m.Ports
	switch b {
	case r.bindings.Credit:
		p.OrInput1(machine.Input1Credit)
	case r.bindings.Start1P:
		p.OrInput1(machine.Input1Start1P)
	case r.bindings.Start2P:
		p.OrInput1(machine.Input1Start2P)
	case r.bindings.P1Left:
		p.OrInput1(machine.Input1P1Left)
	case r.bindings.P1Right:
		p.OrInput1(machine.Input1P1Right)
	case r.bindings.P1Shoot:
		p.OrInput1(machine.Input1P1Shoot)
	case r.bindings.P2Left:
		p.OrInput2(machine.Input2P2Left)
	case r.bindings.P2Right:
		p.OrInput2(machine.Input2P2Right)
	case r.bindings.P2Shoot:
		p.OrInput2(machine.Input2P2Shoot)
	case r.bindings.Quit:
		select {
		case r.QuitRequested <- struct{}{}:
		default:
		}
	}
}

// ClearPulses releases every button bit the last polling tick set. The
// driver calls this once per frame so a single keystroke reads as a brief
// press rather than a latch held forever. Runs on the main goroutine,
// concurrently with route() on the background read goroutine; both go
// through the port device's locked accessors.
func (r *Reader) ClearPulses() {
	p := r.m.Ports
	p.AndNotInput1(machine.Input1Credit | machine.Input1Start1P | machine.Input1Start2P |
		machine.Input1P1Left | machine.Input1P1Right | machine.Input1P1Shoot)
	p.AndNotInput2(machine.Input2P2Left | machine.Input2P2Right | machine.Input2P2Shoot)
}

// Stop terminates the read goroutine and restores the terminal to its
// prior state.
func (r *Reader) Stop() {
	r.stopped.Do(func() {
		close(r.stopCh)
	})
	<-r.done
	if r.nonblockSet {
		_ = syscall.SetNonblock(r.fd, false)
		r.nonblockSet = false
	}
	if r.oldTermState != nil {
		_ = term.Restore(r.fd, r.oldTermState)
		r.oldTermState = nil
	}
}
