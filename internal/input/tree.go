package input

import (
	"fmt"

	"github.com/ja-he/docnav/internal/control/action"
)

// Tree represents an input tree, which can contain various input sequences
// that terminate in an action.
//
// Example:
//
//	tree:                       mapping:
//
//	g
//	+-g     -> top              "gg"    -> top
//	G       -> bottom           "G"     -> bottom
//	<c-d>   -> half page down   "<c-d>" -> half page down
type Tree struct {
	Root    *Node
	Current *Node
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
func (t *Tree) ProcessInput(k Key) (applied bool) {
	next := t.Current.Child(k)
	switch {
	case next == nil:
		t.Current = t.Root
		return false
	case next.Action != nil:
		t.Current = t.Root
		next.Action.Do()
		return true
	default:
		t.Current = next
		return true
	}
}

// Reset abandons a partially entered sequence.
func (t *Tree) Reset() {
	t.Current = t.Root
}

// CapturesInput returns whether this processor "captures" input, i.E. whether
// it ought to take priority in processing over other processors.
// A tree captures input while it is in the middle of a sequence.
func (t *Tree) CapturesInput() bool {
	return t.Current != t.Root
}

// ConstructInputTree construct a Tree for the given mappings of input
// sequence strings to actions.
// If the given mapping is invalid (including one sequence being the prefix of
// another), this returns an error.
func ConstructInputTree(
	spec map[Keyspec]action.Action,
) (*Tree, error) {
	root := NewNode()

	for mapping, action := range spec {
		sequence, err := ConfigKeyspecToKeys(mapping)
		if err != nil {
			return nil, fmt.Errorf("error converting config keyspec: %w", err)
		}
		if len(sequence) == 0 {
			return nil, fmt.Errorf("empty keyspec mapped to '%s'", action.Explain())
		}

		sequenceCurrent := root
		for i, key := range sequence {
			last := i == len(sequence)-1
			sequenceNext, ok := sequenceCurrent.Children[key]
			switch {
			case !ok && last:
				sequenceNext = NewLeaf(action)
			case !ok:
				sequenceNext = NewNode()
			case last || sequenceNext.Action != nil:
				return nil, fmt.Errorf("keyspec '%s' conflicts with another mapping", mapping)
			}
			sequenceCurrent.Children[key] = sequenceNext
			sequenceCurrent = sequenceNext
		}
	}

	return &Tree{
		Root:    root,
		Current: root,
	}, nil
}

// EmptyTree returns a pointer to an empty tree.
func EmptyTree() *Tree {
	root := NewNode()
	return &Tree{
		Root:    root,
		Current: root,
	}
}
