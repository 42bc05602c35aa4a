package conlog_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/shaelmaar/conlog"
)

func TestDefaultRace(t *testing.T) {
	var b bytes.Buffer

	logger1, _ := conlog.New(&b, "DEBUG")
	logger2, _ := conlog.New(&b, "INFO")
	logger3, _ := conlog.New(&b, "WARN")

	wg := sync.WaitGroup{}
	wg.Add(3)
	go setLogger(&wg, logger1)
	go setLogger(&wg, logger2)
	go setLogger(&wg, logger3)
	wg.Wait()
	wg.Add(1)
	go setLogger(&wg, logger2)
	wg.Wait()

	if conlog.Default() != logger2 {
		t.Fatal("logger set race error")
	}
}

func TestSetDefaultNil(t *testing.T) {
	before := conlog.Default()
	conlog.SetDefault(nil)

	if conlog.Default() != before {
		t.Fatal("nil default must be ignored")
	}
}

func setLogger(wg *sync.WaitGroup, l *conlog.Logger) {
	defer wg.Done()
	conlog.SetDefault(l)
}
