package storage

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClient_PutAndPresignGet(t *testing.T) {
	client := TestClient(t, "chat-images")
	ctx := context.Background()

	content := []byte("fake png bytes")
	require.NoError(t, client.Put(ctx, "1700000000000-cat.png", content, "image/png"))

	url, err := client.PresignGet(ctx, "1700000000000-cat.png", 15*time.Minute)
	require.NoError(t, err)
	require.True(t, strings.Contains(url, "1700000000000-cat.png"))

	// the presigned URL must actually serve the object
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, content, got)
}

func TestClient_PresignGet_UnknownKeyStillSigns(t *testing.T) {
	client := TestClient(t, "chat-images")

	// presigning is a pure signature operation; the object need not exist yet
	url, err := client.PresignGet(context.Background(), "missing.png", time.Minute)
	require.NoError(t, err)

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
