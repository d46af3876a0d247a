package participation

import "time"

const (
	DefaultIdleTTL       = 30 * time.Minute
	DefaultSweepInterval = time.Minute
)

// Log messages
const (
	LogMsgWorkspaceOpened   = "Workspace opened"
	LogMsgWorkspaceResumed  = "Workspace resumed from draft"
	LogMsgWorkspaceClosed   = "Workspace closed"
	LogMsgWorkspaceEvicted  = "Idle workspace evicted"
	LogMsgDraftSaveFailed   = "Failed to save draft"
	LogMsgDraftLoadFailed   = "Failed to load draft"
	LogMsgDraftDeleteFailed = "Failed to delete draft"
	LogMsgSweepCompleted    = "Workspace sweep completed"
	LogMsgSubmitPanicked    = "Submitter panicked, reporting unknown error"
)
