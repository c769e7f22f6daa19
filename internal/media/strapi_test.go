package media

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestUploadSendsMultipartAndReturnsURLs(t *testing.T) {
	var gotAuth string
	var gotNames []string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/upload", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		gotAuth = r.Header.Get("Authorization")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		for _, fh := range r.MultipartForm.File["files"] {
			gotNames = append(gotNames, fh.Filename)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]string{
			{"url": "/uploads/cola.png"},
			{"url": "/uploads/fries.png"},
		})
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "strapi-token")
	urls, err := client.Upload(context.Background(), []File{
		{Name: "cola.png", Data: []byte("png-bytes")},
		{Name: "fries.png", Data: []byte("png-bytes")},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"/uploads/cola.png", "/uploads/fries.png"}, urls)
	require.Equal(t, "Bearer strapi-token", gotAuth)
	require.Equal(t, []string{"cola.png", "fries.png"}, gotNames)
}

func TestUploadRejectedIsUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "")
	_, err := client.Upload(context.Background(), []File{{Name: "x.png", Data: []byte("x")}})
	require.Error(t, err)

	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	require.Equal(t, http.StatusForbidden, ue.Status)
}

func TestUploadUnreachableIsUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	client := NewClient(ts.URL, "")
	_, err := client.Upload(context.Background(), []File{{Name: "x.png", Data: []byte("x")}})

	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	require.Zero(t, ue.Status)
}

func TestUploadNoFilesIsNoop(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "")
	urls, err := client.Upload(context.Background(), nil)
	require.NoError(t, err)
	require.Nil(t, urls)
}
