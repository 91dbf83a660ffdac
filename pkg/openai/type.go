package openai

// OpenAIConfig holds the configuration for the OpenAI client.
type OpenAIConfig struct {
	APIKey      string
	Model       string
	SpeechModel string
	ImageModel  string
	BaseURL     string
}

// ClassifyInput carries the signals the classifier looks at.
type ClassifyInput struct {
	Caption   string
	MediaURL  string
	MediaType string
}

// Classification is the structured verdict for a piece of content.
type Classification struct {
	Category       string   `json:"category"`
	Sentiment      string   `json:"sentiment"`
	SentimentScore float64  `json:"sentiment_score"`
	QualityScore   float64  `json:"quality_score"`
	BrandSafe      bool     `json:"brand_safe"`
	Tags           []string `json:"tags"`
}

// SpeechInput carries a voiceover script. Language is a BCP 47 tag or a
// plain language name; empty means the script's own language.
type SpeechInput struct {
	Script   string
	Voice    string
	Language string
	Speed    float64
}

// SpeechResult holds the synthesized audio. The speech endpoint returns
// raw bytes without length metadata, so DurationSeconds is a pace-based
// estimate from the script, not the decoded audio length.
type SpeechResult struct {
	Audio           []byte
	DurationSeconds float64
}

// EditInput describes an image edit request.
type EditInput struct {
	ImageURL   string
	Filter     string
	Brightness float64
	Contrast   float64
	CropRatio  string
	LogoURL    string
}

// DetectedObject is a product-like object located in an image,
// with coordinates normalized to [0, 1].
type DetectedObject struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
	Temperature    float64         `json:"temperature"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []chatContent `json:"content"`
}

type chatContent struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *chatImageURL `json:"image_url,omitempty"`
}

type chatImageURL struct {
	URL string `json:"url"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

type speechRequest struct {
	Model        string  `json:"model"`
	Input        string  `json:"input"`
	Voice        string  `json:"voice"`
	Instructions string  `json:"instructions,omitempty"`
	Speed        float64 `json:"speed,omitempty"`
}

type imageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

type imageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
	Error *apiError `json:"error,omitempty"`
}
