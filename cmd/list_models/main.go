package main

import (
	"context"
	"fmt"
	"os"

	"finance-chatbot-be/internal/config"
	"finance-chatbot-be/pkg/gemini"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// Load API key from .env
	if err := godotenv.Load(); err != nil {
		fmt.Printf("⚠️  Warning: Could not load .env file: %v\n", err)
	}

	apiKey := config.FromEnv().Keys.GoogleGemini
	if apiKey == "" {
		color.Red("❌ GEMINI_API_KEY not found in .env")
		os.Exit(1)
	}

	color.Green("✅ Available Gemini models:\n")

	models, err := gemini.NewClient(apiKey).ListModels(context.Background())
	if err != nil {
		color.Red("❌ Error listing models: %v", err)
		os.Exit(1)
	}

	for _, m := range models {
		fmt.Printf("- %s\n", m.Name)
	}
}
