package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Uploader sends a binary image to the remote host and returns its public
// URL. Only the URL is ever stored; there is no delete path, orphaned
// uploads are not reclaimed.
type Uploader interface {
	Upload(ctx context.Context, filename string, file io.Reader, folder string) (string, error)
}

type cloudinaryUploader struct {
	baseURL      string
	uploadPreset string
	client       *http.Client
}

// NewCloudinaryUploader creates an unsigned-preset upload client.
func NewCloudinaryUploader(cloudName, uploadPreset string) Uploader {
	return &cloudinaryUploader{
		baseURL:      "https://api.cloudinary.com/v1_1/" + cloudName,
		uploadPreset: uploadPreset,
		client:       &http.Client{Timeout: 60 * time.Second},
	}
}

func (u *cloudinaryUploader) Upload(ctx context.Context, filename string, file io.Reader, folder string) (string, error) {
	body, contentType, err := buildUploadForm(filename, file, u.uploadPreset, folder)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.baseURL+"/image/upload", body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("image host unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("image upload failed: %s", apiErr.Error.Message)
		}
		return "", fmt.Errorf("image upload failed: status %d", resp.StatusCode)
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("image upload failed: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("image upload failed: no url in response")
	}
	return result.SecureURL, nil
}

// buildUploadForm assembles the multipart payload in memory. Product images
// are small enough that streaming is not worth the plumbing.
func buildUploadForm(filename string, file io.Reader, preset, folder string) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("upload_preset", preset); err != nil {
		return nil, "", err
	}
	if folder != "" {
		if err := w.WriteField("folder", folder); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
