package resolve

// GroupAction is the decision taken for a whole directory group.
type GroupAction int

const (
	// GroupSkip leaves the group untouched. It is also the fallback for
	// unrecognized selector output, so ambiguity is never destructive.
	GroupSkip GroupAction = iota
	GroupDeleteAll
	GroupMoveAll
	GroupIndividual
)

func (a GroupAction) String() string {
	switch a {
	case GroupSkip:
		return "skip"
	case GroupDeleteAll:
		return "delete all"
	case GroupMoveAll:
		return "move all"
	case GroupIndividual:
		return "individual"
	default:
		return "unknown"
	}
}

// PairAction is the decision taken for a single duplicate pair in
// individual mode. "First" is the later-discovered duplicate, "second" the
// first-seen original.
type PairAction int

const (
	// PairKeepBoth is the no-op and the fallback for unrecognized input.
	PairKeepBoth PairAction = iota
	PairDeleteFirst
	PairDeleteSecond
	PairMoveFirst
	PairMoveSecond
)

func (a PairAction) String() string {
	switch a {
	case PairKeepBoth:
		return "keep both"
	case PairDeleteFirst:
		return "delete first"
	case PairDeleteSecond:
		return "delete second"
	case PairMoveFirst:
		return "move first"
	case PairMoveSecond:
		return "move second"
	default:
		return "unknown"
	}
}
