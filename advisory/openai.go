package advisory

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const diagnosisSystemPrompt = `You are an expert agricultural pathologist. Analyze the crop image and provide a detailed disease diagnosis.
Respond with JSON in this format: {
  "diseaseName": "string",
  "confidence": number (0-100),
  "organicSolutions": ["solution1", "solution2", "solution3"],
  "chemicalSolutions": ["solution1", "solution2", "solution3"],
  "description": "detailed description of the disease and symptoms"
}`

const adviceSystemPrompt = "You are an expert agricultural advisor with deep knowledge of Indian farming practices, crops, weather patterns, and sustainable agriculture. Provide practical, actionable advice that is suitable for Indian farmers."

type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI builds the real advisory client. baseURL is optional and exists
// so tests and self-hosted gateways can point the client elsewhere.
func NewOpenAI(apiKey, baseURL, model string) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAI{client: openai.NewClientWithConfig(cfg), model: model}
}

func (o *OpenAI) DiagnoseCropImage(ctx context.Context, imageBase64 string) (DiseaseDiagnosis, error) {
	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: diagnosisSystemPrompt,
			},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: "Analyze this crop image for diseases. Provide organic and chemical treatment solutions.",
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: "data:image/jpeg;base64," + imageBase64,
						},
					},
				},
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		MaxTokens: 1000,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return DiseaseDiagnosis{}, fmt.Errorf("failed to analyze crop disease: %w", err)
	}
	if len(resp.Choices) == 0 {
		return DiseaseDiagnosis{}, fmt.Errorf("failed to analyze crop disease: empty completion")
	}

	var diagnosis DiseaseDiagnosis
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &diagnosis); err != nil {
		return DiseaseDiagnosis{}, fmt.Errorf("failed to analyze crop disease: bad model reply: %w", err)
	}
	return sanitize(diagnosis), nil
}

func (o *OpenAI) GenerateAdvice(ctx context.Context, question, language string) (string, error) {
	system := adviceSystemPrompt
	if language != "" && language != "en" {
		system += fmt.Sprintf(" Respond in %s.", languageName(language))
	}

	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
		MaxTokens: 500,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		// Farmers still get an answer when the upstream call fails.
		log.Printf("advisory: advice call failed: %v", err)
		return fallbackAdvice, nil
	}
	if len(resp.Choices) == 0 {
		return fallbackAdvice, nil
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return fallbackAdvice, nil
	}
	return content, nil
}
