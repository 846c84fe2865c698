package walkthrough

import (
	"fmt"

	"go.uber.org/zap"
)

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("walkthrough debug: %s on disposed node %q", op, n.Name))
	}
}

// debugMaxTreeDepth is the depth past which debugCheckTreeDepth warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("tree depth exceeds threshold",
			zap.String("node", n.Name),
			zap.Int("depth", depth),
			zap.Int("threshold", debugMaxTreeDepth))
	}
}

// debugMaxChildCount is the child count past which debugCheckChildCount warns.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		logger.Warn("child count exceeds threshold",
			zap.String("node", n.Name),
			zap.Int("children", len(n.children)),
			zap.Int("threshold", debugMaxChildCount))
	}
}

// debugLogFrame logs per-tick state when the scene is in debug mode.
func (s *Scene) debugLogFrame(dt float64) {
	if !s.debug {
		return
	}
	o := s.controller.Orientation()
	logger.Debug("tick",
		zap.Float64("dt", dt),
		zap.Float64("theta", o.Theta),
		zap.Float64("phi", o.Phi),
		zap.Float64("wheel", s.controller.WheelScalar()),
		zap.Int("animating", s.animator.Len()),
		zap.Int("outlined", len(s.outlines.Nodes())))
}
