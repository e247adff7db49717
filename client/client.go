package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/contexthelp/models"
	"github.com/a-h/jsonapi"
)

func New(baseURL string) Client {
	return Client{
		baseURL: baseURL,
	}
}

type Client struct {
	baseURL string
}

// Article gets the help articles for a context. ok is false if the server has
// no content for the context.
func (c Client) Article(ctx context.Context, contextID string) (articles []models.Article, ok bool, err error) {
	url, err := jsonapi.URL(c.baseURL).Path("assistant", contextID).String()
	if err != nil {
		return nil, false, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}
	res, err := jsonapi.Raw(req)
	if err != nil {
		return nil, false, fmt.Errorf("failed to perform HTTP request: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(res.Body)
		return nil, false, jsonapi.InvalidStatusError{
			Status: res.StatusCode,
			Body:   string(body),
		}
	}
	if err = json.NewDecoder(res.Body).Decode(&articles); err != nil {
		return nil, false, fmt.Errorf("failed to decode response: %w", err)
	}
	return articles, true, nil
}

func (c Client) Query(ctx context.Context, req models.QuestionRequest) (resp models.QuestionResponse, err error) {
	url, err := jsonapi.URL(c.baseURL).Path("assistant", "query").String()
	if err != nil {
		return resp, err
	}
	return jsonapi.Post[models.QuestionRequest, models.QuestionResponse](ctx, url, req)
}
