package sheet

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// FrameRate is how often animation frames are stepped.
const FrameRate = 60

// FrameInterval is the delay between two animation frames.
const FrameInterval = time.Second / FrameRate

const settleEpsilon = 0.01

// Motion animates a single value toward a target with a spring.
// With animation disabled the value jumps straight to the target.
type Motion struct {
	spring  harmonica.Spring
	animate bool
	pos     float64
	vel     float64
	target  float64
}

// NewMotion returns a motion resting at start.
func NewMotion(start float64, animate bool, frequency, damping float64) Motion {
	return Motion{
		spring:  harmonica.NewSpring(harmonica.FPS(FrameRate), frequency, damping),
		animate: animate,
		pos:     start,
		target:  start,
	}
}

// SetTarget starts moving toward target.
func (m *Motion) SetTarget(target float64) {
	m.target = target
	if !m.animate {
		m.Jump(target)
	}
}

// Jump places the value at v with no velocity, e.g. while a finger drags it.
func (m *Motion) Jump(v float64) {
	m.pos = v
	m.vel = 0
	m.target = v
}

// Step advances one frame and reports whether more frames are needed.
func (m *Motion) Step() bool {
	if !m.Animating() {
		return false
	}
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, m.target)
	if math.Abs(m.pos-m.target) < settleEpsilon && math.Abs(m.vel) < settleEpsilon {
		m.pos = m.target
		m.vel = 0
	}
	return m.Animating()
}

// Animating reports whether the value has not yet settled on its target.
func (m *Motion) Animating() bool {
	return m.pos != m.target || m.vel != 0
}

// Value returns the current value rounded to whole terminal cells.
func (m *Motion) Value() int {
	return int(math.Round(m.pos))
}

// Target returns the value being moved toward.
func (m *Motion) Target() float64 {
	return m.target
}
