package promptsource

import (
	"context"
	"fmt"
	"strings"

	"github.com/valkey-io/valkey-go"
)

// ValkeySource reads the template from a single string key so every replica shares one prompt.
type ValkeySource struct {
	client valkey.Client
	key    string
}

func NewValkeySource(client valkey.Client, key string) *ValkeySource {
	return &ValkeySource{client: client, key: key}
}

// DialValkey builds a client from either a bare host:port or a redis:// style URL.
func DialValkey(addr string) (valkey.Client, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(addr, "://") {
		opt, err = valkey.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse valkey url: %w", err)
		}
	} else {
		opt = valkey.ClientOption{InitAddress: []string{addr}}
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		return nil, fmt.Errorf("create valkey client: %w", err)
	}
	return client, nil
}

func (s *ValkeySource) Name() string {
	return "valkey:" + s.key
}

func (s *ValkeySource) Fetch(ctx context.Context) (string, error) {
	payload, err := s.client.Do(ctx, s.client.B().Get().Key(s.key).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, s.Name())
		}
		return "", fmt.Errorf("get prompt key: %w", err)
	}
	return payload, nil
}

var _ Source = (*ValkeySource)(nil)
