package klog

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
)

var (
	mtx     sync.Mutex
	output  io.Writer = os.Stderr
	logFile *os.File
	debug   = false
)

const prefixFmt string = "[%s]\t%s - %d %s "

// SetOutput redirects all levels to w.
func SetOutput(w io.Writer) {
	mtx.Lock()
	defer mtx.Unlock()
	closeFile()
	output = w
}

// SetOutputFile appends log lines to pathName, an empty path means stderr.
func SetOutputFile(pathName string) error {
	if pathName == "" {
		SetOutput(os.Stderr)
		return nil
	}
	f, err := os.OpenFile(pathName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	mtx.Lock()
	defer mtx.Unlock()
	closeFile()
	logFile = f
	output = f
	return nil
}

func closeFile() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func SetDebug(enabled bool) {
	mtx.Lock()
	defer mtx.Unlock()
	debug = enabled
}

func logf(level string, f string, v ...any) {
	funcName, file, line, _ := runtime.Caller(2)
	strBuilder := strings.Builder{}
	strBuilder.WriteString(prefixFmt)
	strBuilder.WriteString(f)
	if !strings.HasSuffix(f, "\n") {
		strBuilder.WriteString("\n")
	}
	var a = []any{level, file, line, runtime.FuncForPC(funcName).Name()}
	a = append(a, v...)
	mtx.Lock()
	defer mtx.Unlock()
	_, _ = fmt.Fprintf(output, strBuilder.String(), a...)
}

// Infof outputs log with level Info
func Infof(f string, v ...any) {
	logf("Info", f, v...)
}

// Warnf outputs log with level Warn
func Warnf(f string, v ...any) {
	logf("Warn", f, v...)
}

// Errorf outputs log with level Error
func Errorf(f string, v ...any) {
	logf("Error", f, v...)
}

// Fatalf output log and the program exits with code 1
func Fatalf(f string, v ...any) {
	logf("Fatal", f, v...)
	os.Exit(1)
}

/*
Debugf outputs log with level Debug.

Dropped unless SetDebug(true) was called.
*/
func Debugf(f string, v ...any) {
	mtx.Lock()
	enabled := debug
	mtx.Unlock()
	if !enabled {
		return
	}
	logf("Debug", f, v...)
}
