package gemini

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/require"
)

func TestCollectTextJoinsParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: nil},
			{Content: &genai.Content{Parts: []genai.Part{
				genai.Text("Dear Alex, "),
				genai.Blob{MIMEType: "image/png"},
				genai.Text("today shines.\n"),
			}}},
		},
	}
	require.Equal(t, "Dear Alex, today shines.", collectText(resp))
}

func TestCollectTextEmpty(t *testing.T) {
	require.Equal(t, "", collectText(nil))
	require.Equal(t, "", collectText(&genai.GenerateContentResponse{}))
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(context.Background(), " ", "gemini-2.5-flash", 0.9)
	require.Error(t, err)

	_, err = NewClient(context.Background(), "key", "", 0.9)
	require.Error(t, err)
}

func TestNewClientLeavesTemperatureToProvider(t *testing.T) {
	client, err := NewClient(context.Background(), "key", "gemini-2.5-flash", 0)
	require.NoError(t, err)
	defer client.Close()
	require.Nil(t, client.model.Temperature)

	tuned, err := NewClient(context.Background(), "key", "gemini-2.5-flash", 0.7)
	require.NoError(t, err)
	defer tuned.Close()
	require.NotNil(t, tuned.model.Temperature)
	require.InDelta(t, 0.7, *tuned.model.Temperature, 1e-6)
}
