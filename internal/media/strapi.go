// Package media talks to the headless CMS that stores catalog images. The
// catalog service itself never calls it; the client uploads in the
// background and pushes the resulting URL back through an image-only update.
package media

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/guonaihong/gout"
)

// UpstreamError reports a rejected or unreachable media service.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("media upstream error (status %d): %s", e.Status, e.Message)
}

// File is one binary image to upload.
type File struct {
	Name string
	Data []byte
}

type uploadResult struct {
	URL string `json:"url"`
}

// Client uploads files to a Strapi instance and returns their public URLs.
type Client struct {
	endpoint string
	token    string
}

func NewClient(endpoint, token string) *Client {
	return &Client{endpoint: strings.TrimRight(endpoint, "/"), token: token}
}

// Upload sends the files as one multipart request to Strapi's upload plugin
// and returns the stored URLs in input order.
func (c *Client) Upload(ctx context.Context, files []File) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := writer.CreateFormFile("files", f.Name)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	var results []uploadResult
	var code int
	headers := gout.H{"Content-Type": writer.FormDataContentType()}
	if c.token != "" {
		headers["Authorization"] = "Bearer " + c.token
	}
	err := gout.POST(c.endpoint + "/api/upload").
		WithContext(ctx).
		SetHeader(headers).
		SetBody(body.Bytes()).
		BindJSON(&results).
		Code(&code).
		Do()
	if err != nil {
		return nil, &UpstreamError{Status: 0, Message: err.Error()}
	}
	if code < 200 || code >= 300 {
		return nil, &UpstreamError{Status: code, Message: "upload rejected"}
	}

	urls := make([]string, 0, len(results))
	for _, r := range results {
		urls = append(urls, r.URL)
	}
	return urls, nil
}
