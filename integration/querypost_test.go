package integration

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/contexthelp/client"
	"github.com/a-h/contexthelp/models"
)

// These tests expect `contexthelp serve --answerer=mock` to be listening on
// localhost:9020.

func TestQueryPost(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	c := client.New("http://localhost:9020")
	resp, err := c.Query(context.Background(), models.QuestionRequest{
		Question: "abc",
		Context:  "bet-slip/empty",
	})
	if err != nil {
		t.Fatalf("failed to post query: %v", err)
	}
	if resp.Question != "abc" {
		t.Errorf("expected question to be echoed, got %q", resp.Question)
	}
	if !strings.HasSuffix(resp.Answer, "cba") {
		t.Errorf("expected answer to end with the reversed question, got %q", resp.Answer)
	}
}
