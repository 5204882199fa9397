package identity

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// FileActivityRecorder дописывает записи о попытках входа в текстовый файл.
// Каждая попытка - одна строка с временем в UTC.
type FileActivityRecorder struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewFileActivityRecorder создает recorder, пишущий в указанный файл
func NewFileActivityRecorder(path string) *FileActivityRecorder {
	return &FileActivityRecorder{path: path, now: time.Now}
}

// Record записывает результат попытки входа
func (r *FileActivityRecorder) Record(username string, success bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open activity log: %w", err)
	}
	defer f.Close()

	outcome := "successfully logged in"
	if !success {
		outcome = "gave invalid log-in"
	}

	_, err = fmt.Fprintf(f, "user %s %s at %s UTC\n", username, outcome, r.now().UTC().Format("2006-01-02 15:04:05"))
	if err != nil {
		return fmt.Errorf("write activity log: %w", err)
	}
	return nil
}
