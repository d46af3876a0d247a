package sse

import "time"

// Buffer sizes
const (
	// PublishBufferSize is the buffer size for the publish channel
	PublishBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE
const (
	// EventTypeToast asks the client to show a transient notification
	EventTypeToast = "toast"

	// EventTypeNavigate asks the client to route to another page
	EventTypeNavigate = "navigate"

	// EventTypeDialogClosed is sent when a participation dialog has been torn down
	EventTypeDialogClosed = "dialog.closed"

	// EventTypeConnected is the first event on every stream
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// QueryParamTypes filters the stream to a comma separated list of event types
const QueryParamTypes = "types"

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventPublished     = "Publishing SSE event"
	LogMsgEventDropped       = "SSE publish buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgNotSupported       = "SSE not supported"
)
