package prediction

// Violation kinds reported by ValidateComplete
const (
	ViolationMissingPick   = "missing_pick"
	ViolationMissingScores = "missing_scores"
)

// Violation messages shown next to the offending match
const (
	MsgMissingPick     = "Pick a result for %s vs %s"
	MsgMissingScores   = "Enter both scores for tiebreaker %s vs %s"
	MsgNegativeScore   = "Scores cannot be negative"
	MsgCompleteFirst   = "Complete your predictions first"
	MsgViolationsCount = "%d prediction(s) still need attention"
)
