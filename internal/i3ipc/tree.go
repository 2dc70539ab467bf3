package i3ipc

import (
	"errors"

	"go.i3wm.org/i3/v4"
)

var (
	// ErrNoFocus means the layout tree has no focused container.
	ErrNoFocus = errors.New("no focused node in layout tree")
	// ErrNoWorkspace means the focused container sits outside any workspace.
	ErrNoWorkspace = errors.New("focused node is not inside a workspace")
)

// Node is one container in the GET_TREE layout tree.
type Node = i3.Node

// Version is the GET_VERSION reply.
type Version = i3.Version

const workspaceType = "workspace"

// FocusedWorkspace returns the workspace that contains the focused container.
// A focused workspace node (empty workspace) is returned as is.
func FocusedWorkspace(root *Node) (*Node, error) {
	if root == nil {
		return nil, ErrNoFocus
	}

	path := findFocusedPath(root, nil)
	if path == nil {
		return nil, ErrNoFocus
	}
	for i := len(path) - 1; i >= 0; i-- {
		if path[i].Type == workspaceType {
			return path[i], nil
		}
	}
	return nil, ErrNoWorkspace
}

// findFocusedPath returns the chain of nodes from root down to the focused node.
func findFocusedPath(n *Node, parents []*Node) []*Node {
	path := append(parents, n)
	if n.Focused {
		return path
	}
	for _, children := range [][]*Node{n.Nodes, n.FloatingNodes} {
		for _, child := range children {
			if child == nil {
				continue
			}
			if found := findFocusedPath(child, path[:len(path):len(path)]); found != nil {
				return found
			}
		}
	}
	return nil
}
