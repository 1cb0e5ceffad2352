package model

// BackendID identifies a summarization backend. The set is closed: adding a
// backend means adding a constant here and an implementation in summarizer.
type BackendID int

const (
	// BackendGemini is backend A, the default.
	BackendGemini BackendID = iota
	// BackendOpenAI is backend B, any OpenAI-compatible endpoint.
	BackendOpenAI
)

// Backends lists every BackendID in menu order.
var Backends = []BackendID{BackendGemini, BackendOpenAI}

func (b BackendID) String() string {
	switch b {
	case BackendOpenAI:
		return "openai"
	default:
		return "gemini"
	}
}

// Valid reports whether b is one of the declared backends.
func (b BackendID) Valid() bool {
	return b == BackendGemini || b == BackendOpenAI
}

// ParseBackendChoice maps a model-menu answer to a backend. "2" selects
// backend B; every other value, including empty input, selects backend A.
func ParseBackendChoice(choice string) BackendID {
	if choice == "2" {
		return BackendOpenAI
	}
	return BackendGemini
}

// ParseBackendName maps a configuration name ("gemini", "openai") to a
// backend, falling back to backend A for unknown names.
func ParseBackendName(name string) BackendID {
	if name == BackendOpenAI.String() {
		return BackendOpenAI
	}
	return BackendGemini
}
