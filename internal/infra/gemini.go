package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cantina/internal/dto"

	"github.com/rs/zerolog/log"
)

const (
	// Fallback strings shown when narration is not available. The narrator
	// never surfaces an error to its caller.
	msgMissingKey = "Configuração de API pendente."
	msgCallFailed = "Não foi possível gerar insights no momento."
)

// GeminiClient calls the Gemini generateContent REST endpoint to narrate
// report stats. It is an opaque external collaborator: any failure degrades
// to a fixed fallback string and is only logged.
type GeminiClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewGeminiClient(apiKey, baseURL, model string) *GeminiClient {
	return &GeminiClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Narrate builds the pt-BR management-summary prompt from the stats and
// returns the generated prose, or a fallback string.
func (c *GeminiClient) Narrate(ctx context.Context, stats dto.ReportStats) string {
	if c.apiKey == "" {
		return msgMissingKey
	}

	data, err := json.Marshal(stats)
	if err != nil {
		log.Error().Err(err).Msg("gemini: marshal stats")
		return msgCallFailed
	}

	prompt := fmt.Sprintf(`Analise os seguintes dados de produtividade da Cantina D'Itália: %s.
Forneça um breve resumo (3 parágrafos) com:
1. Taxa de conclusão geral.
2. Setor com melhor desempenho.
3. Sugestão de melhoria operacional.
Responda de forma profissional em português do Brasil.`, data)

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		log.Error().Err(err).Msg("gemini: marshal request")
		return msgCallFailed
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Error().Err(err).Msg("gemini: create request")
		return msgCallFailed
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("gemini: request failed")
		return msgCallFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Msg("gemini: non-200 response")
		return msgCallFailed
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Error().Err(err).Msg("gemini: decode response")
		return msgCallFailed
	}

	var sb strings.Builder
	for _, cand := range result.Candidates {
		for _, part := range cand.Content.Parts {
			sb.WriteString(part.Text)
		}
		break
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		log.Warn().Msg("gemini: empty candidate text")
		return msgCallFailed
	}
	return text
}
