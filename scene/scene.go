package scene

import (
	"sync"
)

// Scene is a flat registry of pickable nodes
// The full scene graph lives on the native side; the engine-side sensor path
// only needs iteration over pickable entities
type Scene struct {
	mu    sync.RWMutex
	nodes []*Node
}

func New() *Scene {
	return &Scene{}
}

// Add registers a node; adding the same node twice is a no-op
func (s *Scene) Add(n *Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.nodes {
		if existing == n {
			return
		}
	}
	s.nodes = append(s.nodes, n)
}

// Remove unregisters a node
func (s *Scene) Remove(n *Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.nodes {
		if existing == n {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			return
		}
	}
}

// Nodes returns a snapshot of registered nodes
// Safe to iterate while the scene is mutated concurrently
func (s *Scene) Nodes() []*Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Len returns the number of registered nodes
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}
