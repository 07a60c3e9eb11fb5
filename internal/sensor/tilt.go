// Package sensor converts raw tilt samples into the bounded horizontal
// intent consumed by the hopper engine. It also provides a keyboard
// emulation for hosts without an analog sensor.
package sensor

// Normalize maps a raw sensor sample to the [-1, 1] intent range.
// fullScale is the raw magnitude representing a full lean; deadzone (in
// normalized units) suppresses sensor jitter around the neutral position.
func Normalize(raw, fullScale, deadzone float64) float64 {
	if fullScale <= 0 {
		return 0
	}
	v := raw / fullScale
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	if v > -deadzone && v < deadzone {
		return 0
	}
	return v
}

// Smoother is an exponential moving average over tilt samples, damping
// sensor noise without adding meaningful lag at game tick rates.
type Smoother struct {
	Alpha  float64 // Blend factor per sample in (0, 1]; 1 disables smoothing
	value  float64
	primed bool
}

// Sample feeds one normalized sample and returns the smoothed value.
func (s *Smoother) Sample(v float64) float64 {
	if !s.primed {
		s.value = v
		s.primed = true
		return s.value
	}
	alpha := s.Alpha
	if alpha <= 0 || alpha > 1 {
		alpha = 1
	}
	s.value += alpha * (v - s.value)
	return s.value
}

// Value returns the last smoothed value.
func (s *Smoother) Value() float64 {
	return s.value
}

// Reset clears the smoother state.
func (s *Smoother) Reset() {
	s.value = 0
	s.primed = false
}

// KeyTilt emulates an analog tilt sensor from discrete key presses.
// Each lean nudges the target; the value ramps toward the target and the
// target decays back to neutral, approximating releasing a tilted board.
type KeyTilt struct {
	Attack float64 // How far the value moves toward the target per step
	Decay  float64 // Target decay toward neutral per step

	target float64
	value  float64
}

// NewKeyTilt returns a key tilt with defaults tuned for 20 steps/second.
func NewKeyTilt() *KeyTilt {
	return &KeyTilt{
		Attack: 0.5,
		Decay:  0.04,
	}
}

// Lean pushes the target toward the given direction (-1 left, +1 right).
func (k *KeyTilt) Lean(dir float64) {
	k.target += dir * 0.5
	if k.target > 1 {
		k.target = 1
	} else if k.target < -1 {
		k.target = -1
	}
}

// Center snaps the tilt back to neutral.
func (k *KeyTilt) Center() {
	k.target = 0
	k.value = 0
}

// Step advances the emulation by one step and returns the current value.
func (k *KeyTilt) Step() float64 {
	k.value += k.Attack * (k.target - k.value)

	switch {
	case k.target > k.Decay:
		k.target -= k.Decay
	case k.target < -k.Decay:
		k.target += k.Decay
	default:
		k.target = 0
	}
	return k.value
}

// Value returns the current emulated tilt without advancing.
func (k *KeyTilt) Value() float64 {
	return k.value
}
