// Command expensectl is the terminal frontend for the expense API.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/baharkarakas/expense-tracker/internal/client"
	"github.com/baharkarakas/expense-tracker/internal/ui"
	"github.com/baharkarakas/expense-tracker/internal/ui/tui"
)

func main() {
	_ = godotenv.Load()

	def := os.Getenv("API_URL")
	if def == "" {
		def = client.DefaultBaseURL
	}
	apiURL := flag.String("api", def, "base URL of the expense API")
	flag.Parse()

	store := ui.NewStore(client.New(*apiURL))
	if _, err := tea.NewProgram(tui.New(store), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "expensectl:", err)
		os.Exit(1)
	}
}
