package describer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

// Fallback is returned whenever the generation endpoint cannot produce
// a usable description.
const Fallback = "Handcrafted with natural elements to bring the essence of nature into your home."

// Service asks a generative-text endpoint for a product description.
// The call is best effort: transport errors, bad statuses, empty bodies
// and an open circuit all degrade to the static fallback.
type Service struct {
	client   *resty.Client
	breaker  *gobreaker.CircuitBreaker
	endpoint string
	apiKey   string
	logger   *log.Logger
}

func New(endpoint, apiKey string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "describer",
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Printf("describer: circuit %s %s -> %s", name, from, to)
		},
	})
	return &Service{
		client:   resty.New().SetTimeout(10 * time.Second).SetRetryCount(0),
		breaker:  breaker,
		endpoint: endpoint,
		apiKey:   apiKey,
		logger:   logger,
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Describe never fails; callers always get usable text.
func (s *Service) Describe(ctx context.Context, productName string) string {
	if s.endpoint == "" {
		return Fallback
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		var out generateResponse
		req := s.client.R().
			SetContext(ctx).
			SetBody(generateRequest{Prompt: prompt(productName)}).
			SetResult(&out)
		if s.apiKey != "" {
			req.SetHeader("Authorization", "Bearer "+s.apiKey)
		}
		resp, err := req.Post(s.endpoint)
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("status %d", resp.StatusCode())
		}
		if strings.TrimSpace(out.Text) == "" {
			return nil, errors.New("empty response")
		}
		return strings.TrimSpace(out.Text), nil
	})
	if err != nil {
		s.logger.Printf("describer: generation failed for %q: %v", productName, err)
		return Fallback
	}
	return result.(string)
}

func prompt(productName string) string {
	return fmt.Sprintf("Write a poetic, nature-inspired, high-end commercial description for a product named %q. Keep it under 60 words and emphasize organic quality.", productName)
}
