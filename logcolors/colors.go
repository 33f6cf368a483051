package logcolors

// ANSI color codes for log prefixes
const (
	Reset  = "\033[0m"
	Green  = "\033[32m"
	Blue   = "\033[34m"
	Purple = "\033[35m"
	Cyan   = "\033[36m"
	Yellow = "\033[33m"
	Red    = "\033[31m"
)

// Server/Init log prefixes
const (
	LogServer = Green + "[Server]" + Reset
	LogConfig = Cyan + "[Config]" + Reset
)

// Request handling log prefixes
const (
	LogRequest = Purple + "[Request]" + Reset
	LogHTTP    = Cyan + "[HTTP]" + Reset
	LogWarning = Red + "[Warning]" + Reset
)

// Provider service log prefixes
const (
	LogToken    = Cyan + "[Token]" + Reset
	LogTrack    = Green + "[Track]" + Reset
	LogManifest = Cyan + "[Manifest]" + Reset
	LogSearch   = Blue + "[Search]" + Reset
	LogCover    = Blue + "[Cover]" + Reset
)

// Status returns the color used for an HTTP status code in request logs.
func Status(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return Green
	case statusCode >= 300 && statusCode < 400:
		return Cyan
	case statusCode >= 400 && statusCode < 500:
		return Yellow
	case statusCode >= 500:
		return Red
	default:
		return Reset
	}
}
