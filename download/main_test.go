package main

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestRecordingFilename(t *testing.T) {
	row := dbRow{
		startMoment:      time.Date(2026, 3, 7, 9, 5, 1, 0, time.UTC),
		user:             "vali",
		releaseVersion:   4,
		recordingVersion: 1,
		id:               uuid.New(),
	}
	assert.Equal(t, "vali/20260307-090501.smoke-1", RecordingFilename(row))
}
