package clients

const (
	USER_AGENT = "mooddecode-client/1.0 (+https://github.com/spacesedan/mooddecode)"

	// Response previews in logs are cut to this many bytes.
	PREVIEW_LENGTH = 50
)
