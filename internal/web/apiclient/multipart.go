package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// FilePart is one file attachment of a multipart submission.
type FilePart struct {
	Field    string
	Filename string
	Content  io.Reader
}

// NewMultipartRequest builds a multipart/form-data request from plain fields
// and file attachments. Field order follows the fields slice so repeated
// fields (e.g. gallery images) are preserved.
func (c *Client) NewMultipartRequest(ctx context.Context, method, endpoint string, fields [][2]string, files []FilePart, token string) (*http.Request, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, field := range fields {
		if err := writer.WriteField(field[0], field[1]); err != nil {
			return nil, fmt.Errorf("apiclient: write field %s: %w", field[0], err)
		}
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return nil, fmt.Errorf("apiclient: create file part %s: %w", file.Field, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, fmt.Errorf("apiclient: copy file part %s: %w", file.Field, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("apiclient: close multipart writer: %w", err)
	}

	req, err := c.NewRequest(ctx, method, endpoint, &buf, token)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req, nil
}

// PostMultipart submits fields and files to endpoint and, when out is
// non-nil, decodes the response body into it.
func (c *Client) PostMultipart(ctx context.Context, endpoint string, fields [][2]string, files []FilePart, token string, out any) error {
	req, err := c.NewMultipartRequest(ctx, http.MethodPost, endpoint, fields, files, token)
	if err != nil {
		return err
	}
	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return c.ErrorFromResponse(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("apiclient: decode response: %w", err)
	}
	return nil
}
