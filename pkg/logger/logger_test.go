package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestError_AttachesErrorField(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := &Logger{Logger: zap.New(core)}

	l.Error("store failed", errors.New("boom"), zap.String("account_id", "abc"))

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "store failed", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "boom", fields["error"])
	assert.Equal(t, "abc", fields["account_id"])
}

func TestWith_KeepsFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := (&Logger{Logger: zap.New(core)}).With(zap.String("request_id", "1234"))

	l.Info("created account")

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "created account", entries[0].Message)
	assert.Equal(t, "1234", entries[0].ContextMap()["request_id"])
}
