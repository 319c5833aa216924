package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogData_LogIncludesDataAndTimings(t *testing.T) {
	logger := SetupLogging(logrus.InfoLevel)
	var out bytes.Buffer
	logger.Out = &out

	logData := NewLogData(logger)
	logData.AddData("transactionCount", 3)
	stop := logData.AddTiming("queryMs")
	stop()
	logData.Log().Info("Handler.query.Complete")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &line))
	assert.Equal(t, "info", line["loglevel"])
	assert.Equal(t, float64(3), line["transactionCount"])
	assert.Contains(t, line, "queryMs")
	assert.Equal(t, "Handler.query.Complete", line["msg"])
}

func TestLogData_AddToExistingTimingAccumulates(t *testing.T) {
	logData := NewLogData(SetupLogging(logrus.InfoLevel))
	logData.AddToExistingTiming("storageMs")()
	logData.AddToExistingTiming("storageMs")()

	assert.Contains(t, logData.timeItems, "storageMs")
}

func TestGetLogData(t *testing.T) {
	assert.Nil(t, GetLogData(context.Background()))

	logData := NewLogData(SetupLogging(logrus.InfoLevel))
	ctx := WithLogData(context.Background(), logData)
	assert.Same(t, logData, GetLogData(ctx))
}
