package cursor

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/milk9111/cursortrail/common"
)

const (
	// adaptiveDistance is the jump size, in pixels, past which the
	// follow speed doubles so the layer catches up instead of crawling.
	adaptiveDistance = 50.0
	adaptiveSpeedCap = 0.8
)

// effectiveSpeed applies the adaptive heuristic: base speed, doubled
// and capped once the remaining distance exceeds the threshold.
func effectiveSpeed(base, dist float64) float64 {
	if dist > adaptiveDistance {
		return math.Min(base*2, adaptiveSpeedCap)
	}
	return base
}

// advance moves the primary layer's displayed position toward the
// target by one tick. The dot layer never integrates; it snapped to
// the target when the pointer moved.
func (e *Engine) advance() {
	if e.cfg.Follow == FollowSpring {
		e.advanceSpring()
		return
	}
	e.advanceLerp()
}

func (e *Engine) advanceLerp() {
	base := e.cfg.Speed
	if e.cfg.Outline {
		// The outer ring deliberately trails harder than the filled
		// circle would; the inner dot marks the exact position.
		base *= 0.5
	}
	d := common.Dist(e.posX, e.posY, e.targetX, e.targetY)
	s := effectiveSpeed(base, d)
	e.posX = common.Lerp(e.posX, e.targetX, s)
	e.posY = common.Lerp(e.posY, e.targetY, s)
}

// springPair holds per-axis damped-spring state for FollowSpring.
type springPair struct {
	spring     harmonica.Spring
	velX, velY float64
}

func (e *Engine) advanceSpring() {
	if e.springs == nil {
		freq := e.cfg.SpringFrequency
		if e.cfg.Outline {
			freq *= 0.5
		}
		e.springs = &springPair{
			spring: harmonica.NewSpring(harmonica.FPS(60), freq, e.cfg.SpringDamping),
		}
	}
	s := e.springs
	e.posX, s.velX = s.spring.Update(e.posX, s.velX, e.targetX)
	e.posY, s.velY = s.spring.Update(e.posY, s.velY, e.targetY)
}
