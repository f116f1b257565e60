// Package runlog acumula as mensagens de uma execução de importação e as grava
// no arquivo de log ao final, espelhando cada uma no logrus imediatamente.
package runlog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dataops-local/pkg/utils"
)

type Level string

const (
	LevelInfo    Level = "INFO"
	LevelWarning Level = "WARNING"
	LevelSuccess Level = "SUCCESS"
	LevelError   Level = "ERROR"
)

const timestampLayout = "2006-01-02 15:04:05"

type Entry struct {
	Time    time.Time
	Level   Level
	Message string
}

func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s: %s", e.Time.Format(timestampLayout), e.Level, e.Message)
}

// Log é o coletor de uma única execução. Seguro para uso concorrente.
type Log struct {
	mu      sync.Mutex
	runID   string
	path    string
	started time.Time
	entries []Entry
	flushed bool
	now     func() time.Time
}

// New cria o coletor. Com path vazio as entradas só vão para o logrus.
func New(path string) *Log {
	runID, err := utils.GenerateID()
	if err != nil {
		runID = "------"
	}

	return &Log{
		runID:   runID,
		path:    path,
		started: time.Now(),
		now:     time.Now,
	}
}

func (l *Log) RunID() string {
	return l.runID
}

func (l *Log) Info(format string, args ...any) {
	l.add(LevelInfo, format, args...)
}

func (l *Log) Warning(format string, args ...any) {
	l.add(LevelWarning, format, args...)
}

func (l *Log) Success(format string, args ...any) {
	l.add(LevelSuccess, format, args...)
}

func (l *Log) Error(format string, args ...any) {
	l.add(LevelError, format, args...)
}

func (l *Log) add(level Level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	l.entries = append(l.entries, Entry{Time: l.now(), Level: level, Message: msg})
	l.mu.Unlock()

	entry := logrus.WithField("run_id", l.runID)
	switch level {
	case LevelWarning:
		entry.Warn(msg)
	case LevelError:
		entry.Error(msg)
	default:
		entry.Info(msg)
	}
}

// Entries retorna uma cópia das entradas registradas até agora
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Count conta as entradas de um nível
func (l *Log) Count(level Level) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, e := range l.entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

// Flush acrescenta o cabeçalho da execução e as entradas ao arquivo de log.
// Chamadas seguintes não fazem nada.
func (l *Log) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.flushed || l.path == "" {
		return nil
	}
	l.flushed = true

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "erro ao criar diretório de log")
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "erro ao abrir arquivo de log %s", l.path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	separator := strings.Repeat("=", 60)
	fmt.Fprintf(w, "\n%s\nNOVA IMPORTAÇÃO %s - %s\n%s\n", separator, l.runID, l.started.Format(timestampLayout), separator)
	for _, e := range l.entries {
		fmt.Fprintln(w, e.String())
	}

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "erro ao gravar arquivo de log")
	}

	return nil
}
