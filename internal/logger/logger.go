package logger

import (
	"archive/zip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"CobranzaSaas/internal/serviceiface"
)

// LoggerService redirects the stdlib logger to rotating files and zips
// logs past the retention window.
type LoggerService struct {
	config        map[string]interface{}
	file          *os.File
	mu            sync.Mutex
	stopCh        chan struct{}
	wg            sync.WaitGroup
	maxFileBytes  int64
	retentionDays int
	folderPath    string
}

func NewLoggerService(cfg map[string]interface{}) serviceiface.Service {
	maxMB := cfgInt(cfg, "max_file_mb")
	retention := cfgInt(cfg, "retention_days")
	folder, _ := cfg["folder_path"].(string)
	if folder == "" {
		folder = "./logs"
	}
	return &LoggerService{
		config:        cfg,
		stopCh:        make(chan struct{}),
		maxFileBytes:  int64(maxMB) * 1024 * 1024,
		retentionDays: retention,
		folderPath:    folder,
	}
}

// yaml decodes numbers as int or float64 depending on the source
func cfgInt(cfg map[string]interface{}, key string) int {
	switch v := cfg[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func (l *LoggerService) Name() string {
	return "logger"
}

func (l *LoggerService) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(l.folderPath, 0755); err != nil {
		return err
	}
	file, err := l.openLogFile()
	if err != nil {
		return err
	}
	l.file = file
	log.SetOutput(file)
	log.Println("[LoggerService] Started, writing to", file.Name())

	l.wg.Add(1)
	go l.backgroundWorker()
	return nil
}

func (l *LoggerService) Stop() error {
	close(l.stopCh)
	l.wg.Wait()
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		log.Println("[LoggerService] Stopping")
		return l.file.Close()
	}
	return nil
}

func (l *LoggerService) openLogFile() (*os.File, error) {
	name := filepath.Join(l.folderPath, fmt.Sprintf("cobranza_%s.log", time.Now().Format("20060102_150405")))
	return os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}

func (l *LoggerService) backgroundWorker() {
	defer l.wg.Done()
	rotateTicker := time.NewTicker(10 * time.Second)
	retentionTicker := time.NewTicker(24 * time.Hour)
	defer rotateTicker.Stop()
	defer retentionTicker.Stop()

	for {
		select {
		case <-l.stopCh:
			return
		case <-rotateTicker.C:
			l.rotateIfNeeded()
		case <-retentionTicker.C:
			l.archiveOldLogs()
		}
	}
}

func (l *LoggerService) rotateIfNeeded() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil || l.maxFileBytes <= 0 {
		return
	}
	info, err := l.file.Stat()
	if err != nil || info.Size() < l.maxFileBytes {
		return
	}
	l.file.Close()
	file, err := l.openLogFile()
	if err != nil {
		return
	}
	l.file = file
	log.SetOutput(file)
	log.Println("[LoggerService] Rotated log file to", file.Name())
}

// archiveOldLogs zips and removes log files older than the retention window.
func (l *LoggerService) archiveOldLogs() {
	if l.retentionDays <= 0 {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -l.retentionDays)
	entries, err := os.ReadDir(l.folderPath)
	if err != nil {
		return
	}

	zipFile, err := os.Create(filepath.Join(l.folderPath, fmt.Sprintf("logs_%s.zip", time.Now().Format("20060102"))))
	if err != nil {
		return
	}
	defer zipFile.Close()
	zw := zip.NewWriter(zipFile)
	defer zw.Close()

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".log" {
			continue
		}
		fullPath := filepath.Join(l.folderPath, e.Name())
		info, err := os.Stat(fullPath)
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		w, err := zw.Create(e.Name())
		if err != nil {
			continue
		}
		src, err := os.Open(fullPath)
		if err != nil {
			continue
		}
		io.Copy(w, src)
		src.Close()
		os.Remove(fullPath)
	}
}

func (l *LoggerService) LogAudit(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	log.Printf("[AUDIT] %s", msg)
}

var GlobalLogger *LoggerService

func SetGlobalLogger(l *LoggerService) {
	GlobalLogger = l
}
