package sse

// ToastPayload carries a transient notification message
type ToastPayload struct {
	Message string `json:"message"`
}

// NavigatePayload carries the route the client should open
type NavigatePayload struct {
	Target string `json:"target"`
}

// DialogClosedPayload identifies the workspace whose dialog was torn down
type DialogClosedPayload struct {
	GameweekID int64 `json:"gameweek_id"`
}

// ConnectedPayload is sent once when a stream opens
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters,omitempty"`
}
