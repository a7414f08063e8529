package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestSimpleProgressBasic(t *testing.T) {
	buf := &bytes.Buffer{}
	progress := NewProgressReporter(buf)

	progress.Start(100)
	time.Sleep(10 * time.Millisecond)
	progress.Update(50)
	progress.Finish()

	output := buf.String()
	if !strings.Contains(output, "Parsing:") {
		t.Error("Expected progress output to contain 'Parsing:'")
	}
	if !strings.Contains(output, "files/s") {
		t.Error("Expected progress output to contain a files/s rate")
	}
}

func TestSimpleProgressZeroTotal(t *testing.T) {
	buf := &bytes.Buffer{}
	progress := NewProgressReporter(buf).(*SimpleProgress)

	// Start with zero total should not cause panic
	progress.Start(0)
	progress.Update(0)
	progress.Finish()
}

func TestSimpleProgressError(t *testing.T) {
	buf := &bytes.Buffer{}
	progress := NewProgressReporter(buf)

	progress.Start(100)
	progress.Error(fmt.Errorf("test error"))

	output := buf.String()
	if !strings.Contains(output, "Error:") {
		t.Error("Expected error output to contain 'Error:'")
	}
	if !strings.Contains(output, "test error") {
		t.Error("Expected error output to contain error message")
	}
}

func TestSimpleProgressConcurrent(t *testing.T) {
	buf := &bytes.Buffer{}
	progress := NewProgressReporter(buf)

	progress.Start(1000)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(start int) {
			for j := 0; j < 100; j++ {
				progress.Update(int64(start*100 + j))
			}
			done <- true
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	progress.Finish()

	if buf.Len() == 0 {
		t.Error("Expected some progress output")
	}
}

func TestNewProgressReporterNilWriter(t *testing.T) {
	// Should default to stdout, not panic
	progress := NewProgressReporter(nil)
	if progress == nil {
		t.Fatal("NewProgressReporter(nil) should not return nil")
	}
}
