package isometric

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup eases one or more float64 fields of a node toward their
// targets. Call Update once per frame: the group writes the eased values,
// marks the node dirty and sets Done once every field has arrived. A group
// whose node was disposed stops without writing.
type TweenGroup struct {
	node   *Node
	fields []*float64
	tweens []*gween.Tween
	Done   bool
}

// newTweenGroup eases each field from its current value to the matching
// entry of to.
func newTweenGroup(node *Node, duration float32, fn ease.TweenFunc, fields []*float64, to ...float64) *TweenGroup {
	g := &TweenGroup{node: node, fields: fields, tweens: make([]*gween.Tween, len(fields))}
	for i, f := range fields {
		g.tweens[i] = gween.New(float32(*f), float32(to[i]), duration, fn)
	}
	return g
}

// Update advances the group by dt seconds.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.node.IsDisposed() {
		g.Done = true
		return
	}
	done := true
	for i, tw := range g.tweens {
		v, finished := tw.Update(dt)
		*g.fields[i] = float64(v)
		done = done && finished
	}
	g.Done = done
	g.node.MarkDirty()
}

// TweenAlpha fades node.Alpha to the target value. The overlay uses it for
// tile opacity changes.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, []*float64{&node.Alpha}, to)
}

// TweenRotation turns node.Rotation to the target angle in radians.
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, []*float64{&node.Rotation}, to)
}

// TweenSkew eases node.SkewX and node.SkewY to the target angles in radians.
func TweenSkew(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, []*float64{&node.SkewX, &node.SkewY}, toX, toY)
}
