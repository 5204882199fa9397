package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Уровни логирования в порядке возрастания важности
const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

// Logger пишет леверованные сообщения в файл и в stdout
type Logger struct {
	file  *os.File
	out   *log.Logger
	level int
}

// New создает логгер, пишущий в указанный файл и в stdout.
// Допустимые уровни: debug, info, warn, error (по умолчанию info).
func New(filePath, level string) (*Logger, error) {
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logger: failed to open log file %s: %w", filePath, err)
	}

	return &Logger{
		file:  file,
		out:   log.New(io.MultiWriter(file, os.Stdout), "", log.LstdFlags),
		level: parseLevel(level),
	}, nil
}

// Debug логирует отладочное сообщение
func (l *Logger) Debug(format string, v ...interface{}) {
	l.printf(levelDebug, "DEBUG", format, v...)
}

// Info логирует информационное сообщение
func (l *Logger) Info(format string, v ...interface{}) {
	l.printf(levelInfo, "INFO", format, v...)
}

// Warn логирует предупреждение
func (l *Logger) Warn(format string, v ...interface{}) {
	l.printf(levelWarn, "WARN", format, v...)
}

// Error логирует ошибку
func (l *Logger) Error(format string, v ...interface{}) {
	l.printf(levelError, "ERROR", format, v...)
}

// Fatal логирует ошибку и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.printf(levelError, "FATAL", format, v...)
	l.Close()
	os.Exit(1)
}

// Close закрывает файл логов
func (l *Logger) Close() error {
	return l.file.Close()
}

func (l *Logger) printf(level int, tag, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	l.out.Printf("["+tag+"] "+format, v...)
}

func parseLevel(level string) int {
	switch strings.ToLower(level) {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}
