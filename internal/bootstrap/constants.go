package bootstrap

// Log messages for application wiring
const (
	LogMsgStartingMatchday     = "Starting Matchday"
	LogMsgConfigurationLoaded  = "Configuration loaded"
	LogMsgComponentsReady      = "Components initialized"
	LogMsgSweepScheduled       = "Workspace sweep scheduled"
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgDraftStoreCloseFail  = "Draft store close failed"
)

// SweepJobName identifies the idle workspace sweep in the scheduler
const SweepJobName = "workspace_sweep"
