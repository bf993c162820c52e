package platform

import (
	"context"
	"fmt"
	"io"

	"github.com/go-resty/resty/v2"
)

// RAGClient talks to the external RAG service. The service is treated as
// opaque: /query returns a streamed plain-text body, /upload takes
// multipart "files" parts and answers with JSON.
type RAGClient struct {
	client *resty.Client
}

var RAG *RAGClient

func InitRAGClient() {
	RAG = NewRAGClient(Cfg.RagBaseURL)
}

func NewRAGClient(baseURL string) *RAGClient {
	return &RAGClient{
		client: resty.New().SetBaseURL(baseURL),
	}
}

// Query posts a question and returns the raw response body so the caller
// can relay chunks as they arrive. The caller must close the body.
func (c *RAGClient) Query(ctx context.Context, question string) (io.ReadCloser, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"question": question}).
		SetDoNotParseResponse(true).
		Post("/query")
	if err != nil {
		return nil, fmt.Errorf("failed to query RAG service: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		body := resp.RawBody()
		defer body.Close()
		data, _ := io.ReadAll(io.LimitReader(body, 4096))
		return nil, fmt.Errorf("RAG service returned status %d: %s", resp.StatusCode(), data)
	}

	return resp.RawBody(), nil
}

type UploadPart struct {
	Filename string
	Reader   io.Reader
}

// Upload rebuilds a multipart payload from the given parts and forwards it
// to the RAG ingestion endpoint. The upstream status code and body are
// returned unmodified.
func (c *RAGClient) Upload(ctx context.Context, parts []UploadPart) (int, []byte, error) {
	req := c.client.R().SetContext(ctx)
	for _, part := range parts {
		req.SetFileReader("files", part.Filename, part.Reader)
	}

	resp, err := req.Post("/upload")
	if err != nil {
		return 0, nil, fmt.Errorf("failed to upload to RAG service: %w", err)
	}
	return resp.StatusCode(), resp.Body(), nil
}
