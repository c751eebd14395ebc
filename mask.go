package isometric

// SetMask sets a mask node for this node. The mask node's alpha channel
// determines which parts of this node are visible. The mask node is NOT part
// of the scene tree; its transform is expressed in the masked node's parent
// space, so a Clone of a sibling masks exactly where that sibling is drawn.
func (n *Node) SetMask(maskNode *Node) {
	n.mask = maskNode
}

// ClearMask removes the mask from this node.
func (n *Node) ClearMask() {
	n.mask = nil
}

// GetMask returns the current mask node, or nil if no mask is set.
func (n *Node) GetMask() *Node {
	return n.mask
}
