package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultHuggingFaceURL = "https://api-inference.huggingface.co"

// HuggingFace implements the Generator interface for the Hugging Face
// inference API's text-generation task.
type HuggingFace struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewHuggingFace creates a new Hugging Face provider.
func NewHuggingFace(opts Options) *HuggingFace {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultHuggingFaceURL
	}
	return &HuggingFace{
		apiKey:  opts.APIKey,
		model:   opts.Model,
		baseURL: baseURL,
		client:  newHTTPClient(opts.Timeout),
	}
}

func (h *HuggingFace) Name() string { return "huggingface" }

func (h *HuggingFace) Generate(ctx context.Context, prompt string) (string, error) {
	body := hfRequest{
		Inputs: prompt,
		Parameters: hfParameters{
			MaxLength:          150,
			NumReturnSequences: 1,
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", &ProviderError{Provider: h.Name(), Err: fmt.Errorf("marshaling request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", h.baseURL+"/models/"+h.model, bytes.NewReader(payload))
	if err != nil {
		return "", &ProviderError{Provider: h.Name(), Err: fmt.Errorf("creating request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+h.apiKey)

	httpResp, err := h.client.Do(httpReq)
	if err != nil {
		return "", &ProviderError{Provider: h.Name(), Err: fmt.Errorf("sending request: %w", err)}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", &ProviderError{Provider: h.Name(), Err: fmt.Errorf("reading response: %w", err)}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return "", &ProviderError{Provider: h.Name(), StatusCode: httpResp.StatusCode, Body: string(respBody)}
	}

	// The API answers with an array of generated sequences. When the expected
	// generated_text field is absent the raw first element is returned as-is;
	// a payload that is not a non-empty array falls back to the raw body.
	var elements []json.RawMessage
	if err := json.Unmarshal(respBody, &elements); err != nil || len(elements) == 0 {
		return string(respBody), nil
	}

	var first hfGenerated
	if err := json.Unmarshal(elements[0], &first); err == nil && first.GeneratedText != "" {
		return first.GeneratedText, nil
	}
	return string(elements[0]), nil
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxLength          int `json:"max_length"`
	NumReturnSequences int `json:"num_return_sequences"`
}

type hfGenerated struct {
	GeneratedText string `json:"generated_text"`
}
