//go:build http_enabled

package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUploadRecordingHttp_SendsRecording(t *testing.T) {
	r, _ := recordRun(13, 30)
	var user, id string
	var data []byte
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, req *http.Request) {
			require.NoError(t, req.ParseMultipartForm(1<<20))
			user = req.FormValue("user")
			id = req.FormValue("id")
			f, _, err := req.FormFile("recording")
			require.NoError(t, err)
			data, err = io.ReadAll(f)
			require.NoError(t, err)
		}))
	defer server.Close()

	require.NoError(t, UploadRecordingHttp(server.URL, "someone", &r))
	assert.Equal(t, "someone", user)
	assert.Equal(t, r.Id.String(), id)
	assert.Equal(t, r, DeserializeRecording(data))
}

func TestUploadRecordingHttp_FailuresAreReturned(t *testing.T) {
	r, _ := recordRun(13, 30)
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
	url := server.URL

	assert.NotPanics(t, func() {
		assert.Error(t, UploadRecordingHttp(url, "someone", &r))
	})

	// Nobody listening anymore.
	server.Close()
	assert.NotPanics(t, func() {
		assert.Error(t, UploadRecordingHttp(url, "someone", &r))
	})

	assert.NoError(t, UploadRecordingHttp("", "someone", &r))
}
