package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/JeSappelleWilly/dokalbot/internal/usecase/interfaces"
)

const (
	defaultOmniBaseURL  = "https://api.getomni.ai"
	defaultPollInterval = 2 * time.Second
	defaultMaxPolls     = 15
)

var ErrExtractionIncomplete = errors.New("receipt extraction did not complete")

// OmniExtractor pulls payment data out of receipt images via the OmniAI
// extract API. Extraction is asynchronous on their side: submit returns a job
// id which is polled until it completes or the attempt budget runs out.
type OmniExtractor struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	templateID   string
	pollInterval time.Duration
	maxPolls     int
}

var _ interfaces.IReceiptExtractor = (*OmniExtractor)(nil)

func NewOmniExtractor(apiKey, templateID, baseURL string, timeout time.Duration) *OmniExtractor {
	if baseURL == "" {
		baseURL = defaultOmniBaseURL
	}
	return &OmniExtractor{
		httpClient:   &http.Client{Timeout: timeout},
		baseURL:      baseURL,
		apiKey:       apiKey,
		templateID:   templateID,
		pollInterval: defaultPollInterval,
		maxPolls:     defaultMaxPolls,
	}
}

type extractSubmitResponse struct {
	JobID string `json:"jobId"`
}

type extractResultResponse struct {
	Status string `json:"status"`
	Result struct {
		Extracted map[string]any `json:"extracted"`
	} `json:"result"`
}

func (e *OmniExtractor) Extract(ctx context.Context, imageURL string) (interfaces.ReceiptData, error) {
	jobID, err := e.submit(ctx, imageURL)
	if err != nil {
		return interfaces.ReceiptData{}, err
	}

	for attempt := 0; attempt < e.maxPolls; attempt++ {
		select {
		case <-ctx.Done():
			return interfaces.ReceiptData{}, ctx.Err()
		case <-time.After(e.pollInterval):
		}

		result, done, err := e.poll(ctx, jobID)
		if err != nil {
			return interfaces.ReceiptData{}, err
		}
		if done {
			return result, nil
		}
	}

	log.Warn().Str("job_id", jobID).Msg("receipt extraction timed out")
	return interfaces.ReceiptData{}, ErrExtractionIncomplete
}

func (e *OmniExtractor) submit(ctx context.Context, imageURL string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"url":        imageURL,
		"templateId": e.templateID,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/extract", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-api-key", e.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("extract submit failed with status %d: %s", resp.StatusCode, body)
	}

	var submit extractSubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&submit); err != nil {
		return "", err
	}
	if submit.JobID == "" {
		return "", errors.New("extract submit returned no job id")
	}
	return submit.JobID, nil
}

func (e *OmniExtractor) poll(ctx context.Context, jobID string) (interfaces.ReceiptData, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/extract/"+jobID, nil)
	if err != nil {
		return interfaces.ReceiptData{}, false, err
	}
	req.Header.Set("x-api-key", e.apiKey)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return interfaces.ReceiptData{}, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return interfaces.ReceiptData{}, false, fmt.Errorf("extract poll failed with status %d: %s", resp.StatusCode, body)
	}

	var result extractResultResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return interfaces.ReceiptData{}, false, err
	}

	switch result.Status {
	case "COMPLETE":
		return receiptFromExtracted(result.Result.Extracted), true, nil
	case "ERROR", "FAILED":
		return interfaces.ReceiptData{}, false, fmt.Errorf("extraction job %s failed", jobID)
	default:
		return interfaces.ReceiptData{}, false, nil
	}
}

func receiptFromExtracted(extracted map[string]any) interfaces.ReceiptData {
	var data interfaces.ReceiptData
	if v, ok := extracted["amount"].(float64); ok {
		data.Amount = v
	}
	if v, ok := extracted["reference"].(string); ok {
		data.Reference = v
	}
	return data
}
