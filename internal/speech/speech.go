// Package speech defines the speech-recognition capability surface the app
// depends on. The program never talks to a real recognizer; implementations
// here are scripted streams used by demos and tests, plus denied/restricted
// stand-ins for exercising the authorization branches.
package speech

import (
	"errors"
	"time"
)

// Authorization is the user's answer to the recognition permission prompt.
type Authorization int

const (
	AuthNotDetermined Authorization = iota
	AuthAuthorized
	AuthDenied
	AuthRestricted
)

// String returns the lowercase name used in config files and logs.
func (a Authorization) String() string {
	switch a {
	case AuthNotDetermined:
		return "notDetermined"
	case AuthAuthorized:
		return "authorized"
	case AuthDenied:
		return "denied"
	case AuthRestricted:
		return "restricted"
	default:
		return "unknown"
	}
}

// Result is one partial or final transcription. Text always carries the full
// transcript so far, not a delta.
type Result struct {
	Text    string
	IsFinal bool
}

// ErrRecognizerFailed is the terminal error of a stream that died mid-session.
var ErrRecognizerFailed = errors.New("speech recognizer failed")

// Stream delivers transcription results until it ends. Next blocks until a
// result arrives, the stream completes (ok=false, err=nil), or it fails
// (ok=false, err != nil).
type Stream interface {
	Next() (result Result, ok bool, err error)
	Stop()
}

// Client is the injected speech capability.
type Client interface {
	// AuthorizationStatus returns the current permission state without
	// prompting.
	AuthorizationStatus() Authorization
	// RequestAuthorization prompts if the state is undetermined and returns
	// the resulting state.
	RequestAuthorization() Authorization
	// StartTask begins live transcription. Only valid when authorized.
	StartTask() Stream
}

// scriptedStream replays canned results with an optional delay per result.
type scriptedStream struct {
	results []Result
	delay   time.Duration
	fail    bool
	stopped chan struct{}
	idx     int
}

func (s *scriptedStream) Next() (Result, bool, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-s.stopped:
			return Result{}, false, nil
		}
	}
	if s.idx >= len(s.results) {
		if s.fail {
			return Result{}, false, ErrRecognizerFailed
		}
		return Result{}, false, nil
	}
	r := s.results[s.idx]
	s.idx++
	return r, true, nil
}

func (s *scriptedStream) Stop() {
	select {
	case <-s.stopped:
	default:
		close(s.stopped)
	}
}

// scriptedClient is always authorized and replays the same script for every
// task.
type scriptedClient struct {
	results []Result
	delay   time.Duration
	fail    bool
}

func (c *scriptedClient) AuthorizationStatus() Authorization  { return AuthAuthorized }
func (c *scriptedClient) RequestAuthorization() Authorization { return AuthAuthorized }
func (c *scriptedClient) StartTask() Stream {
	return &scriptedStream{
		results: c.results,
		delay:   c.delay,
		fail:    c.fail,
		stopped: make(chan struct{}),
	}
}

// Scripted returns an authorized client whose streams yield the given
// results and then complete normally.
func Scripted(results ...Result) Client {
	return &scriptedClient{results: results}
}

// ScriptedWithDelay is Scripted with a fixed delay before each result, for
// demo runs where the transcript should trickle in.
func ScriptedWithDelay(delay time.Duration, results ...Result) Client {
	return &scriptedClient{results: results, delay: delay}
}

// Failing returns an authorized client whose streams yield the given results
// and then fail with ErrRecognizerFailed.
func Failing(results ...Result) Client {
	return &scriptedClient{results: results, fail: true}
}

// statusClient has a fixed authorization status and no usable stream.
type statusClient struct {
	status Authorization
	// granted is what RequestAuthorization resolves an undetermined status to.
	granted Authorization
}

func (c *statusClient) AuthorizationStatus() Authorization { return c.status }
func (c *statusClient) RequestAuthorization() Authorization {
	if c.status == AuthNotDetermined {
		c.status = c.granted
	}
	return c.status
}
func (c *statusClient) StartTask() Stream {
	return &scriptedStream{fail: true, stopped: make(chan struct{})}
}

// Denied returns a client that has been refused recognition permission.
func Denied() Client { return &statusClient{status: AuthDenied} }

// Restricted returns a client on a device that cannot offer recognition.
func Restricted() Client { return &statusClient{status: AuthRestricted} }

// Undetermined returns a client that resolves to the given status when the
// permission prompt runs.
func Undetermined(granted Authorization) Client {
	return &statusClient{status: AuthNotDetermined, granted: granted}
}
