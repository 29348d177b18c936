package main

import (
	"fmt"
	"os"

	"github.com/daymade/medscribe/cmd/medscribe/cmd"
	"github.com/daymade/medscribe/internal/config"

	// Import providers to register them
	_ "github.com/daymade/medscribe/internal/app/api/gemini"
	_ "github.com/daymade/medscribe/internal/app/api/openai"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load .env file: %v\n", err)
	}

	cmd.Execute()
}
