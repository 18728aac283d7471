package quiz

import "context"

// Tick advances the countdown by one second. The cadence is externally
// driven by the app shell's one-second ticker, so the engine never
// owns a goroutine of its own for timing. Untimed and inactive sessions
// ignore ticks. Hitting zero triggers the finish path exactly once; the
// zero-crossing is re-checked within the same tick so a session never
// survives one tick past its limit.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil || !e.active || e.session.TimeLimit == 0 {
		return
	}

	if e.timeRemaining <= 0 {
		e.autoFinishLocked()
		return
	}

	e.timeRemaining--
	if e.timeRemaining <= 0 {
		e.autoFinishLocked()
	}
}

// autoFinishLocked starts the finish state machine from the timer path.
// The guard transition happens synchronously under the lock, so concurrent
// ticks and a racing manual finish resolve to a single submission; only
// the network call runs on its own goroutine.
func (e *Engine) autoFinishLocked() {
	snap, err := e.beginFinishLocked()
	if err != nil {
		return
	}

	e.log.Info().Str("session_id", snap.sessionID).Msg("time limit reached, auto-finishing")
	go func() {
		// Outcome handling is in submit; the error has already been logged
		// and the session left retryable by the time it returns.
		_ = e.submit(context.Background(), snap)
	}()
}
