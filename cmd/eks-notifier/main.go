package main

import (
	"context"
	"os"

	"github.com/aws-samples/eks-notifier/cmd/eks-notifier/cmd"
)

const lambdaRuntimeEnv = "AWS_LAMBDA_RUNTIME_API"

func main() {
	// Lambda starts the bootstrap binary without arguments
	if len(os.Args) == 1 && os.Getenv(lambdaRuntimeEnv) != "" {
		os.Args = append(os.Args, "lambda")
	}

	err := cmd.Execute(context.Background())
	if err != nil {
		os.Exit(1)
	}
}
