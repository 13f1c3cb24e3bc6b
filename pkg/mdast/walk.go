package mdast

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(t *Token) error

// Walk performs a pre-order traversal of the AST starting at root.
// The callback is called for each token. If it returns a non-nil error,
// the walk stops immediately and returns that error.
func Walk(root *Token, walkFunc WalkFunc) error {
	if root == nil {
		return nil
	}

	if err := walkFunc(root); err != nil {
		return err
	}

	for _, child := range root.Children {
		if err := Walk(child, walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// FindAll returns all tokens matching the predicate.
func FindAll(root *Token, predicate func(t *Token) bool) []*Token {
	var result []*Token

	//nolint:errcheck // Walk only returns nil errors in this usage
	Walk(root, func(t *Token) error {
		if predicate(t) {
			result = append(result, t)
		}
		return nil
	})

	return result
}

// FindFirst returns the first token matching the predicate, or nil.
func FindFirst(root *Token, predicate func(t *Token) bool) *Token {
	var found *Token

	//nolint:errcheck // errStopWalk is expected and intentionally ignored
	Walk(root, func(t *Token) error {
		if predicate(t) {
			found = t
			return errStopWalk
		}
		return nil
	})

	return found
}

// FindByType returns all tokens of the specified type.
func FindByType(root *Token, typ NodeType) []*Token {
	return FindAll(root, func(t *Token) bool {
		return t.Type == typ
	})
}

// errStopWalk is a sentinel error used to stop walking early.
var errStopWalk = &stopWalkError{}

type stopWalkError struct{}

func (e *stopWalkError) Error() string {
	return "stop walk"
}
