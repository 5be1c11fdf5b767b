// Package network defines a depth-first walker over topology trees, with
// pre-order and post-order hooks and depth limiting.
package network

// WalkOption configures optional behavior of Walk.
type WalkOption func(*WalkOptions)

// WalkOptions holds the hooks and limits of a traversal.
type WalkOptions struct {
	// OnVisit, if non-nil, is invoked when a node is first reached (pre-order).
	// Returning an error aborts the walk with that error.
	OnVisit func(n *Network, depth int) error

	// OnExit, if non-nil, is invoked after all children of a node have been
	// walked (post-order). Returning an error aborts the walk.
	OnExit func(n *Network, depth int) error

	// MaxDepth, if non-negative, stops descending below the given depth.
	// A depth of 0 visits only the root. Default is -1 (no limit).
	MaxDepth int
}

// DefaultWalkOptions returns options with no hooks and no depth limit.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{MaxDepth: -1}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(n *Network, depth int) error) WalkOption {
	return func(o *WalkOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(n *Network, depth int) error) WalkOption {
	return func(o *WalkOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits the traversal depth.
func WithMaxDepth(limit int) WalkOption {
	return func(o *WalkOptions) {
		o.MaxDepth = limit
	}
}

// Walk traverses n depth-first, children left to right.
//
// Errors:
//   - ErrNilNetwork if n or any reached child is nil.
//   - any error returned by OnVisit or OnExit.
//
// Walk does not guard against cycles; run Validate first on untrusted trees.
// Complexity: O(N) plus the cost of the hooks.
func Walk(n *Network, opts ...WalkOption) error {
	wopts := DefaultWalkOptions()
	for _, fn := range opts {
		fn(&wopts)
	}

	return walk(n, 0, &wopts)
}

func walk(n *Network, depth int, o *WalkOptions) error {
	if n == nil {
		return ErrNilNetwork
	}
	if o.OnVisit != nil {
		if err := o.OnVisit(n, depth); err != nil {
			return err
		}
	}
	if o.MaxDepth < 0 || depth < o.MaxDepth {
		for _, c := range n.children {
			if err := walk(c, depth+1, o); err != nil {
				return err
			}
		}
	}
	if o.OnExit != nil {
		return o.OnExit(n, depth)
	}

	return nil
}
