package services

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// OpenAI chat-completions compatible shapes, shared by the Alibaba,
// DeepSeek, 01.AI, Zhipu and Volcengine endpoints. The image is embedded as
// a data URL inside an image_url content part, and stream is always false:
// one synchronous response per analysis.

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *imageURLPart `json:"image_url,omitempty"`
}

type imageURLPart struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func buildChatBody(model, prompt string, image []byte, mimeType string) ([]byte, error) {
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))
	reqBody := chatRequest{
		Model: model,
		Messages: []chatMessage{{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: prompt},
				{Type: "image_url", ImageURL: &imageURLPart{URL: dataURL}},
			},
		}},
		Stream: false,
	}
	return json.Marshal(reqBody)
}

func parseChatText(body []byte) string {
	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return ""
	}
	if len(resp.Choices) == 0 {
		return ""
	}
	return resp.Choices[0].Message.Content
}
