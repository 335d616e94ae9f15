package bundle

import "errors"

// Sentinel errors for the bundle package. Callers should branch with
// errors.Is, never string comparison (grounded on builder/errors.go's error
// policy).
var (
	// ErrInputMissing indicates a required nodes/edges file is absent or
	// unreadable. Fatal.
	ErrInputMissing = errors.New("bundle: input file missing or unreadable")

	// ErrInputMalformed indicates a line could not be parsed. Fatal.
	ErrInputMalformed = errors.New("bundle: malformed input line")

	// ErrUnknownLabel indicates an edge line referenced a node label that
	// was never declared in the nodes file. Treated as a malformed input.
	ErrUnknownLabel = errors.New("bundle: edge references unknown node label")

	// ErrEmptyGraph indicates a graph has no nodes, so a bounding box
	// cannot be computed.
	ErrEmptyGraph = errors.New("bundle: graph has no nodes")

	// ErrConfigConflict indicates both a weight threshold and a percentile
	// filter were supplied. This is NOT fatal: the weight filter wins and
	// the conflict is logged at warn level.
	ErrConfigConflict = errors.New("bundle: both weight and percentile filters set, weight takes precedence")
)
