package openai

const (
	// BaseURL is the OpenAI API base URL.
	BaseURL = "https://api.openai.com/v1"

	// DefaultModel is used for classification and vision requests.
	DefaultModel = "gpt-4o-mini"

	// DefaultSpeechModel is used for text to speech requests.
	DefaultSpeechModel = "gpt-4o-mini-tts"

	// DefaultImageModel is used for image edit requests.
	DefaultImageModel = "gpt-image-1"

	// DefaultVoice is the voice used when the caller does not pick one.
	DefaultVoice = "alloy"
)
