package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/shaelmaar/conlog"
	"github.com/shaelmaar/conlog/internal/env"
	"github.com/shaelmaar/conlog/worker"
)

func main() {
	// A missing .env is fine, the environment may carry the values directly.
	_ = godotenv.Load()

	logger, err := conlog.NewStdout(env.GetString("LOG_LEVEL", ""))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	conlog.SetDefault(logger)

	root := logger.Scope("main")
	root.Info("starting workers")

	pool := worker.NewPool(logger, worker.Options{
		WorkerLimit: int32(env.GetInt("WORKER_LIMIT", 4)),
	})

	for i, level := range []string{"", "DEBUG", "WARN", "ERROR"} {
		name := fmt.Sprintf("worker-%d", i+1)
		_, err := pool.Submit(&worker.Job{
			Name:  name,
			Level: level,
			Run:   process,
			ErrFunc: func(err error) {
				root.Errorf("worker failed: %v", err)
			},
		})
		if err != nil {
			root.Errorf("submit %s: %v", name, err)
		}
	}

	pool.Wait()
	root.Info("all workers done")
}

func process(ctx context.Context) error {
	log := conlog.FromContext(ctx)

	log.Debug("picking up work")
	log.Info("processing batch")
	time.Sleep(10 * time.Millisecond)
	log.Warnf("batch took %s", 10*time.Millisecond)
	log.Error("giving up on one item")

	return nil
}
