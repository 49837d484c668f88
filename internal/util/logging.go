package util

import (
	"fmt"
	"log"
	"sync/atomic"
)

// Level define a severidade mínima registrada no log
type Level int32

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

var levels = [...]struct {
	tag   string
	color string
}{
	LevelInfo:  {"INFO", "\x1b[32m"},
	LevelWarn:  {"WARN", "\x1b[33m"},
	LevelError: {"ERROR", "\x1b[31m"},
}

var minLevel atomic.Int32

// SetLevel descarta mensagens abaixo de l
func SetLevel(l Level) {
	minLevel.Store(int32(l))
}

func Infof(format string, args ...any)  { logf(LevelInfo, format, args...) }
func Warnf(format string, args ...any)  { logf(LevelWarn, format, args...) }
func Errorf(format string, args ...any) { logf(LevelError, format, args...) }

func logf(l Level, format string, args ...any) {
	if int32(l) < minLevel.Load() {
		return
	}
	lv := levels[l]
	log.Printf("%s\x1b[0m %s", lv.color+lv.tag, fmt.Sprintf(format, args...))
}
