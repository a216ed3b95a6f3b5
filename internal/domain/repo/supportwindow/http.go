package supportwindow

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws-samples/eks-notifier/internal/domain/entity"
)

const maxDocumentSize = 1 << 20

// HTTPSource fetches the document with a single GET.
type HTTPSource struct {
	client *http.Client
	url    string
}

func NewHTTPSource(url string, timeout time.Duration) HTTPSource {
	return HTTPSource{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

func (s HTTPSource) LoadSupportWindows(ctx context.Context) (entity.SupportWindowTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", s.url, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get %s: unexpected status %s", s.url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.url, err)
	}

	return Decode(data)
}
