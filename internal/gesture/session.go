package gesture

import "time"

// MaxVelocitySamples bounds the instantaneous-velocity ring. Release
// heuristics average over at most this many recent samples.
const MaxVelocitySamples = 6

// Session records one physical gesture from pointer-down to release. One
// instance exists per gesture; it is never reused. Only the owning engine
// mutates it, and the engine replaces the whole session on reset rather
// than clearing fields in place.
type Session struct {
	Start     Point
	Last      Point
	StartTime time.Time
	LastTime  time.Time
	Pointer   Pointer

	// Committed flips once the gesture is classified as a drag.
	Committed bool
	// InteractiveTarget is set when the initial contact landed on an
	// interactive control; commit then requires a stricter deadzone.
	InteractiveTarget bool
	// InScrollRegion is set when the initial contact landed inside a
	// scrollable region; commit then runs the scroll-conflict resolver.
	InScrollRegion bool
	// ExtentAtStart is the panel's resting extent when the gesture began.
	ExtentAtStart float64

	samples [MaxVelocitySamples]float64
	count   int
	next    int
}

// NewSession starts tracking a gesture from its down event.
func NewSession(ev Event) *Session {
	return &Session{
		Start:     ev.Point,
		Last:      ev.Point,
		StartTime: ev.Time,
		LastTime:  ev.Time,
		Pointer:   ev.Pointer,
	}
}

// Advance moves the session to a new sample point and returns the elapsed
// time since the previous sample in milliseconds (0 for out-of-order
// timestamps).
func (s *Session) Advance(ev Event) float64 {
	dt := float64(ev.Time.Sub(s.LastTime)) / float64(time.Millisecond)
	s.Last = ev.Point
	s.LastTime = ev.Time
	if dt < 0 {
		return 0
	}
	return dt
}

// AddSample records one signed instantaneous velocity sample (units/ms).
// The ring keeps only the most recent MaxVelocitySamples values.
func (s *Session) AddSample(v float64) {
	s.samples[s.next] = v
	s.next = (s.next + 1) % MaxVelocitySamples
	if s.count < MaxVelocitySamples {
		s.count++
	}
}

// LastSample returns the most recent velocity sample, or 0 if none exist.
func (s *Session) LastSample() float64 {
	if s.count == 0 {
		return 0
	}
	return s.samples[(s.next+MaxVelocitySamples-1)%MaxVelocitySamples]
}

// MeanSample returns the mean of the recorded velocity samples, or 0 if
// none exist.
func (s *Session) MeanSample() float64 {
	if s.count == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < s.count; i++ {
		sum += s.samples[i]
	}
	return sum / float64(s.count)
}

// ElapsedMS returns the gesture duration in milliseconds.
func (s *Session) ElapsedMS() float64 {
	return float64(s.LastTime.Sub(s.StartTime)) / float64(time.Millisecond)
}

// DeltaX returns total horizontal displacement since contact.
func (s *Session) DeltaX() float64 {
	return s.Last.X - s.Start.X
}

// DeltaY returns total vertical displacement since contact.
func (s *Session) DeltaY() float64 {
	return s.Last.Y - s.Start.Y
}
