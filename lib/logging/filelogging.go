package logging

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/ziflex/lecho/v3"
)

// Logger writes to STDOUT, or to a timestamped file when LOG_FILE_PATH
// is configured.
func Logger(logFilePath string) *lecho.Logger {
	logger := lecho.New(
		os.Stdout,
		lecho.WithLevel(log.INFO),
		lecho.WithTimestamp(),
	)
	if logFilePath != "" {
		file, err := GetLoggingFile(logFilePath)
		if err != nil {
			logger.Errorf("failed to create logging file: %v", err)
		} else {
			logger.SetOutput(file)
		}
	}

	return logger
}

func GetLoggingFile(path string) (*os.File, error) {
	extension := filepath.Ext(path)
	if extension != "" {
		path = strings.Replace(path, extension, time.Now().Format("-2006-01-02")+extension, 1)
	} else {
		path = path + time.Now().Format("-2006-01-02")
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return f, nil
}
