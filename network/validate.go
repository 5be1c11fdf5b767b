package network

import "fmt"

// Validate checks the structural invariants of the tree rooted at n:
// known kinds, non-empty compositions, non-empty and unique component IDs,
// and single ownership (no node reachable twice, hence no cycles).
//
// It returns the first violation found, wrapping one of ErrNilNetwork,
// ErrInvalidKind, ErrEmptyComposition, ErrEmptyID, ErrDuplicateID or
// ErrSharedNode.
// Complexity: O(N) time and space.
func Validate(n *Network) error {
	if n == nil {
		return ErrNilNetwork
	}

	seenNodes := make(map[*Network]struct{})
	seenIDs := make(map[string]struct{})

	return Walk(n, WithOnVisit(func(node *Network, depth int) error {
		if _, ok := seenNodes[node]; ok {
			return fmt.Errorf("Validate: %s at depth %d: %w", node.kind, depth, ErrSharedNode)
		}
		seenNodes[node] = struct{}{}

		switch {
		case node.kind.IsComponent():
			if node.id == "" {
				return fmt.Errorf("Validate: %s at depth %d: %w", node.kind, depth, ErrEmptyID)
			}
			if _, ok := seenIDs[node.id]; ok {
				return fmt.Errorf("Validate: %q: %w", node.id, ErrDuplicateID)
			}
			seenIDs[node.id] = struct{}{}
		case node.kind.IsComposition():
			if len(node.children) == 0 {
				return fmt.Errorf("Validate: %s at depth %d: %w", node.kind, depth, ErrEmptyComposition)
			}
		default:
			return fmt.Errorf("Validate: kind %d at depth %d: %w", node.kind, depth, ErrInvalidKind)
		}

		return nil
	}))
}
