// Verto translates text from the command line through OpenAI-compatible
// and Google Gemini LLM endpoints.
package main

import (
	"os"

	"verto/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
