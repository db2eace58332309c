package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/2beens/fitlog/internal/middleware"
)

func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path, token string, body any) (int, []byte) {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s%s", serverEndpoint, path), reqBody)
	s.Require().NoError(err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(middleware.AuthTokenHeader, token)
	}

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.Logf("close response body: %s", err)
		}
	}()

	respBytes, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) nowUTC() time.Time {
	return time.Now().UTC()
}
