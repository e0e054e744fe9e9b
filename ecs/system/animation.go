package system

import (
	"github.com/milk9111/tilenav/common"
	"github.com/milk9111/tilenav/ecs"
	"github.com/milk9111/tilenav/ecs/component"
)

const (
	animIdle   = "idle"
	animMoving = "moving"
)

// AnimationSystem picks idle or moving from the agent's state and cycles the
// frame index.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AgentComponent.Kind(), component.AnimationComponent.Kind(), func(e ecs.Entity, agent *component.Agent, anim *component.Animation) {
		if agent.Moving() {
			anim.Play(animMoving)
		} else {
			anim.Play(animIdle)
		}
		if !anim.Playing {
			return
		}

		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}

		ticksPerFrame := 1
		if def.FPS > 0 {
			ticksPerFrame = max(int(common.TPS/def.FPS), 1)
		}

		anim.FrameTimer++
		if anim.FrameTimer < ticksPerFrame {
			return
		}
		anim.FrameTimer = 0
		anim.Frame++
		if anim.Frame >= def.FrameCount {
			if def.Loop {
				anim.Frame = 0
			} else {
				anim.Frame = def.FrameCount - 1
				anim.Playing = false
			}
		}
	})
}

// SpriteIndex returns the sheet column of the current frame.
func SpriteIndex(anim *component.Animation) int {
	def, ok := anim.Defs[anim.Current]
	if !ok {
		return 0
	}
	return def.ColStart + anim.Frame
}
