package common

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/KimMachineGun/automemlimit/memlimit"
	"github.com/dustin/go-humanize"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/aws-samples/eks-notifier/internal/log"
)

const (
	// default ratio from the memlimit pkg
	memLimitRatio = 0.9

	lambdaMemoryEnv = "AWS_LAMBDA_FUNCTION_MEMORY_SIZE"
)

func SetupSignalHandler(ctx context.Context) context.Context {
	ret, cancel := context.WithCancel(ctx)

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		logger := log.Logger()

		<-c
		logger.V(1).Info("Signal received to stop")
		cancel()

		<-c
		logger.V(0).Info("Re-receiving stop signal, exit directly")
		os.Exit(1)
	}()

	return ret
}

func SetMaxProcs() error {
	logger := log.Logger()

	// maxprocs uses a logger with parameters: $template, $arg1, $arg2, ... whereas logr has the same signature but different meaning: $msg, $key1, $value1, $key2, $value2, ...
	_, err := maxprocs.Set(maxprocs.Logger(func(msg string, args ...interface{}) {
		logger.Info(fmt.Sprintf(msg, args...))
	}))
	if err != nil {
		return fmt.Errorf("failed to set max procs: %w", err)
	}

	return nil
}

// SetMemLimit sets the go memory limit to a ratio of the container limit, or of the function memory inside Lambda.
func SetMemLimit() error {
	logger := log.Logger()

	var limit int64
	var err error

	source := "cgroup"
	if lambdaLimit, ok := lambdaMemoryLimit(); ok {
		source = "lambda"
		limit, err = memlimit.SetGoMemLimitWithProvider(memlimit.Limit(lambdaLimit), memLimitRatio)
	} else {
		limit, err = memlimit.SetGoMemLimit(memLimitRatio)
	}

	if err != nil {
		return fmt.Errorf("failed to set go mem limit: %w", err)
	}

	logger.V(1).Info("Go memlimit configured", "source", source, "ratio", memLimitRatio, "limit", humanize.IBytes(uint64(limit)))

	return nil
}

// lambdaMemoryLimit reads the memory configured for the function, in bytes.
func lambdaMemoryLimit() (uint64, bool) {
	value, ok := os.LookupEnv(lambdaMemoryEnv)
	if !ok {
		return 0, false
	}

	mib, err := strconv.ParseUint(value, 10, 64)
	if err != nil || mib == 0 {
		return 0, false
	}

	return mib * humanize.MiByte, true
}
