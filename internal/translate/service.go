package translate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
)

const (
	DefaultBaseURL = "https://translate.googleapis.com/translate_a/single"
	requestTimeout = 10 * time.Second
)

var (
	ErrTranslationFailed = errors.New("Translation failed")
	ErrInvalidResponse   = errors.New("Invalid translation response")
)

type Service interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

type service struct {
	baseURL string
	client  *http.Client
}

// NewService proxies the public Google translate endpoint at baseURL. Each
// call makes exactly one request.
func NewService(baseURL string) Service {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &service{
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

func (s *service) Translate(ctx context.Context, text, from, to string) (string, error) {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", from)
	q.Set("tl", to)
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: upstream status %d", ErrTranslationFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}

	// Response shape: [[["translated","source",...],...],...]
	translated := gjson.GetBytes(body, "0.0.0")
	if translated.Type != gjson.String {
		return "", ErrInvalidResponse
	}
	return translated.String(), nil
}
