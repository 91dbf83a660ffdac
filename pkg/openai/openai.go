package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	pkghttp "ugc-srv/pkg/http"
)

type openaiImpl struct {
	cfg        OpenAIConfig
	httpClient pkghttp.IClient
}

const classifySystemPrompt = `You review user generated marketing content.
Given a caption and optionally a media frame, respond with a JSON object:
{"category": one of "product_review"|"unboxing"|"tutorial"|"lifestyle"|"other",
"sentiment": "positive"|"neutral"|"negative",
"sentiment_score": number in [-1,1],
"quality_score": number in [0,10],
"brand_safe": boolean,
"tags": array of short lowercase strings}`

func (o *openaiImpl) Classify(ctx context.Context, input ClassifyInput) (Classification, error) {
	content := []chatContent{
		{Type: "text", Text: fmt.Sprintf("Caption: %s", input.Caption)},
	}
	if input.MediaURL != "" && input.MediaType == "image" {
		content = append(content, chatContent{Type: "image_url", ImageURL: &chatImageURL{URL: input.MediaURL}})
	}

	req := chatRequest{
		Model: o.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: []chatContent{{Type: "text", Text: classifySystemPrompt}}},
			{Role: "user", Content: content},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	raw, err := o.chat(ctx, req)
	if err != nil {
		return Classification{}, fmt.Errorf("openai.Classify: %w", err)
	}

	var cls Classification
	if err := json.Unmarshal([]byte(raw), &cls); err != nil {
		return Classification{}, fmt.Errorf("openai.Classify: decode verdict: %w", err)
	}

	return cls, nil
}

func (o *openaiImpl) Speak(ctx context.Context, input SpeechInput) (SpeechResult, error) {
	if strings.TrimSpace(input.Script) == "" {
		return SpeechResult{}, fmt.Errorf("openai.Speak: empty script")
	}

	model := o.cfg.SpeechModel
	if model == "" {
		model = DefaultSpeechModel
	}
	voice := input.Voice
	if voice == "" {
		voice = DefaultVoice
	}

	var instructions string
	if input.Language != "" {
		instructions = fmt.Sprintf("Speak in %s.", input.Language)
	}

	resp, status, err := o.httpClient.Post(ctx, o.cfg.BaseURL+"/audio/speech", speechRequest{
		Model:        model,
		Input:        input.Script,
		Voice:        voice,
		Instructions: instructions,
		Speed:        input.Speed,
	}, o.headers())
	if err != nil {
		return SpeechResult{}, fmt.Errorf("openai.Speak: %w", err)
	}
	if status != http.StatusOK {
		return SpeechResult{}, fmt.Errorf("openai.Speak: status %d: %s", status, truncate(resp))
	}

	return SpeechResult{
		Audio:           resp,
		DurationSeconds: estimateDuration(input.Script, input.Speed),
	}, nil
}

func (o *openaiImpl) EditImage(ctx context.Context, input EditInput) ([]byte, error) {
	model := o.cfg.ImageModel
	if model == "" {
		model = DefaultImageModel
	}

	var sb strings.Builder
	sb.WriteString("Recreate the image at ")
	sb.WriteString(input.ImageURL)
	sb.WriteString(" with the following adjustments applied:")
	if input.Filter != "" {
		fmt.Fprintf(&sb, " apply a %s filter,", input.Filter)
	}
	if input.Brightness != 0 {
		fmt.Fprintf(&sb, " adjust brightness by %+.2f,", input.Brightness)
	}
	if input.Contrast != 0 {
		fmt.Fprintf(&sb, " adjust contrast by %+.2f,", input.Contrast)
	}
	if input.CropRatio != "" {
		fmt.Fprintf(&sb, " crop to a %s aspect ratio,", input.CropRatio)
	}
	if input.LogoURL != "" {
		fmt.Fprintf(&sb, " overlay the logo from %s in the bottom right corner,", input.LogoURL)
	}
	prompt := strings.TrimSuffix(sb.String(), ",")

	resp, status, err := o.httpClient.Post(ctx, o.cfg.BaseURL+"/images/generations", imageRequest{
		Model:          model,
		Prompt:         prompt,
		Size:           "1024x1024",
		ResponseFormat: "b64_json",
	}, o.headers())
	if err != nil {
		return nil, fmt.Errorf("openai.EditImage: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("openai.EditImage: status %d: %s", status, truncate(resp))
	}

	var out imageResponse
	if err := json.Unmarshal(resp, &out); err != nil {
		return nil, fmt.Errorf("openai.EditImage: decode response: %w", err)
	}
	if out.Error != nil {
		return nil, fmt.Errorf("openai.EditImage: %s", out.Error.Message)
	}
	if len(out.Data) == 0 {
		return nil, fmt.Errorf("openai.EditImage: empty response")
	}

	img, err := base64.StdEncoding.DecodeString(out.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("openai.EditImage: decode image: %w", err)
	}

	return img, nil
}

const detectSystemPrompt = `Locate distinct purchasable products in the image.
Respond with a JSON object {"objects": [{"label": short product name,
"x": left, "y": top, "w": width, "h": height}]} where coordinates are
normalized to [0,1]. Return at most 8 objects.`

func (o *openaiImpl) DetectObjects(ctx context.Context, mediaURL string) ([]DetectedObject, error) {
	req := chatRequest{
		Model: o.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: []chatContent{{Type: "text", Text: detectSystemPrompt}}},
			{Role: "user", Content: []chatContent{
				{Type: "image_url", ImageURL: &chatImageURL{URL: mediaURL}},
			}},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	raw, err := o.chat(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("openai.DetectObjects: %w", err)
	}

	var out struct {
		Objects []DetectedObject `json:"objects"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("openai.DetectObjects: decode objects: %w", err)
	}

	return out.Objects, nil
}

func (o *openaiImpl) chat(ctx context.Context, req chatRequest) (string, error) {
	resp, status, err := o.httpClient.Post(ctx, o.cfg.BaseURL+"/chat/completions", req, o.headers())
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("status %d: %s", status, truncate(resp))
	}

	var out chatResponse
	if err := json.Unmarshal(resp, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("%s", out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("empty response")
	}

	return out.Choices[0].Message.Content, nil
}

func (o *openaiImpl) headers() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + o.cfg.APIKey,
		"Content-Type":  "application/json",
	}
}

// estimateDuration approximates audio length from word count at a
// typical narration pace of 150 words per minute.
func estimateDuration(script string, speed float64) float64 {
	if speed <= 0 {
		speed = 1.0
	}
	words := len(strings.Fields(script))
	return float64(words) / (150.0 * speed) * 60.0
}

func truncate(b []byte) string {
	const max = 256
	if len(b) > max {
		return string(b[:max])
	}
	return string(b)
}
