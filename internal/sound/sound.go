// Package sound is the sound-effect capability: load a named effect once,
// play it on speaker changes.
package sound

import (
	"io"
	"sync"
)

// Player is the injected sound capability.
type Player interface {
	Load(name string)
	Play()
}

// bellPlayer writes the terminal bell. The only effect a TUI can portably
// produce.
type bellPlayer struct {
	mu  sync.Mutex
	out io.Writer
}

// Bell returns a Player that rings the terminal bell on the given writer.
func Bell(out io.Writer) Player {
	return &bellPlayer{out: out}
}

func (p *bellPlayer) Load(name string) {}

func (p *bellPlayer) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	io.WriteString(p.out, "\a")
}

// nopPlayer discards everything.
type nopPlayer struct{}

func (nopPlayer) Load(string) {}
func (nopPlayer) Play()       {}

// Nop returns a silent Player.
func Nop() Player { return nopPlayer{} }

// Counter records calls for tests.
type Counter struct {
	mu    sync.Mutex
	loads []string
	plays int
}

// NewCounter returns a recording Player.
func NewCounter() *Counter { return &Counter{} }

func (c *Counter) Load(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loads = append(c.loads, name)
}

func (c *Counter) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.plays++
}

// Plays reports how many times Play ran.
func (c *Counter) Plays() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.plays
}

// Loads reports the effect names loaded, in order.
func (c *Counter) Loads() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.loads...)
}
