package domain

// ReferralLink is a shareable campaign link bound to a deployment origin.
type ReferralLink struct {
	Origin string `json:"origin"`
	Link   string `json:"link"`
}

// ShareMessage is the plain-text payload handed to a share capability.
type ShareMessage struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// ShareMethod names a share capability.
type ShareMethod string

const (
	ShareMethodNative    ShareMethod = "native-share"
	ShareMethodClipboard ShareMethod = "clipboard-copy"
)

// ShareStatus is the uniform outcome of a broadcast.
type ShareStatus string

const (
	ShareStatusShared      ShareStatus = "shared"
	ShareStatusFallback    ShareStatus = "fallback"
	ShareStatusFailed      ShareStatus = "failed"
	ShareStatusUnavailable ShareStatus = "unavailable"
)

// ShareCapabilities describes what the host environment can do. The HTTP
// layer fills it from the client's declaration.
type ShareCapabilities struct {
	Native    bool `json:"native"`
	Clipboard bool `json:"clipboard"`
}

// ShareResult is returned by a broadcast. Notice is a user-facing hint for
// the fallback path, e.g. "Message and link copied to clipboard!".
type ShareResult struct {
	Method  ShareMethod  `json:"method,omitempty"`
	Status  ShareStatus  `json:"status"`
	Message ShareMessage `json:"message"`
	Notice  string       `json:"notice,omitempty"`
}
