package logger

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gopkg.in/natefinch/lumberjack.v2"
)

// TestNewLoggerLevels 测试日志级别解析
func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"unknown", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			log := New(Config{Level: tt.level})
			assert.Equal(t, tt.want, log.GetLevel())
		})
	}
}

// TestNewLoggerFormatter 测试JSON格式化器
func TestNewLoggerFormatter(t *testing.T) {
	log := New(Config{Level: "info"})

	_, ok := log.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}

// TestNewLoggerFileOutput 测试配置日志文件时使用轮转输出
func TestNewLoggerFileOutput(t *testing.T) {
	file := filepath.Join(t.TempDir(), "extract.log")
	log := New(Config{Level: "info", File: file, MaxSize: 10})

	rotator, ok := log.Out.(*lumberjack.Logger)
	assert.True(t, ok)
	assert.Equal(t, file, rotator.Filename)
}
