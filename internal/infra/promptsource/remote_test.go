package promptsource

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/valkey-io/valkey-go/mock"
	"go.uber.org/mock/gomock"
)

func TestValkeySourceFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	client.EXPECT().
		Do(gomock.Any(), mock.Match("GET", "horoscope:prompt")).
		Return(mock.Result(mock.ValkeyString("Hello {user_name}")))

	body, err := NewValkeySource(client, "horoscope:prompt").Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Hello {user_name}", body)
}

func TestValkeySourceMissingKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	client.EXPECT().
		Do(gomock.Any(), mock.Match("GET", "horoscope:prompt")).
		Return(mock.Result(mock.ValkeyNil()))

	_, err := NewValkeySource(client, "horoscope:prompt").Fetch(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestValkeySourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	client.EXPECT().
		Do(gomock.Any(), mock.Match("GET", "horoscope:prompt")).
		Return(mock.ErrorResult(errors.New("connection reset")))

	src := NewValkeySource(client, "horoscope:prompt")
	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

const noSuchKeyBody = `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message><Key>missing.txt</Key><BucketName>prompts</BucketName><Resource>/prompts/missing.txt</Resource><RequestId>1</RequestId></Error>`

func newObjectStore(t *testing.T, objects map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := objects[r.URL.Path]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, noSuchKeyBody)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
		if r.Method != http.MethodHead {
			_, _ = io.WriteString(w, body)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestS3SourceFetch(t *testing.T) {
	srv := newObjectStore(t, map[string]string{"/prompts/daily.txt": "Today is {current_date}."})

	src, err := NewS3Source(srv.URL, "access", "secret", "prompts", "us-east-1", "daily.txt")
	require.NoError(t, err)

	body, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Today is {current_date}.", body)
}

func TestS3SourceMissingKey(t *testing.T) {
	srv := newObjectStore(t, nil)

	src, err := NewS3Source(srv.URL, "access", "secret", "prompts", "us-east-1", "missing.txt")
	require.NoError(t, err)

	_, err = src.Fetch(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
}
