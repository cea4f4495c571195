//go:build http_enabled

package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
)

// makeHttpRequest makes a POST HTTP request to an endpoint and returns the
// body of the response as a string.
func makeHttpRequest(url string, fields map[string]string, files map[string][]byte) (string, error) {
	// Create a buffer to write our multipart form data.
	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return "", err
		}
	}
	for k, v := range files {
		part, err := writer.CreateFormFile(k, k)
		if err != nil {
			return "", err
		}
		if _, err = part.Write(v); err != nil {
			return "", err
		}
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	// Create a POST request with the multipart form data.
	request, err := http.NewRequest("POST", url, &requestBody)
	if err != nil {
		return "", err
	}
	request.Header.Set("content-type", writer.FormDataContentType())

	// Perform the request.
	client := &http.Client{}
	response, err := client.Do(request)
	if err != nil {
		return "", err
	}
	defer func(body io.ReadCloser) { _ = body.Close() }(response.Body)
	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("http request failed: %d", response.StatusCode)
	}
	data, err := io.ReadAll(response.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// UploadRecordingHttp sends a finished recording to url. Nothing is sent if
// url is empty.
func UploadRecordingHttp(url string, user string, r *Recording) error {
	if url == "" {
		return nil
	}
	log.Printf("[Upload] sending recording %s (%d frames)", r.Id,
		len(r.Timestamps))
	_, err := makeHttpRequest(url,
		map[string]string{
			"user":              user,
			"release_version":   strconv.FormatInt(r.ReleaseVersion, 10),
			"recording_version": strconv.FormatInt(r.RecordingVersion, 10),
			"id":                r.Id.String()},
		map[string][]byte{"recording": r.Serialize()})
	return err
}
