package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepSelectingBackend step = iota
	stepEnteringDBURL
	stepEnteringAPIKey
	stepEnteringModel
	stepEnteringPort
	stepWritingEnv
	stepProbingHealth
	stepComplete
)

var backendChoices = []string{"Postgres database", "In-memory (no database)"}

type model struct {
	step         step
	cursor       int
	useMemory    bool
	dbURL        string
	apiKey       string
	aiModel      string
	port         string
	currentInput string
	message      string
	quitting     bool
}

type envWrittenMsg struct{}
type healthMsg struct{ ok bool }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	return model{step: stepSelectingBackend}
}

func (m model) Init() tea.Cmd {
	return nil
}

func writeEnv(m model) tea.Cmd {
	return func() tea.Msg {
		var b strings.Builder
		if m.useMemory {
			b.WriteString("USE_MEMORY_STORAGE=true\n")
		} else {
			b.WriteString("USE_MEMORY_STORAGE=false\n")
			fmt.Fprintf(&b, "DB_URL=%s\n", m.dbURL)
		}
		fmt.Fprintf(&b, "OPENAI_API_KEY=%s\n", m.apiKey)
		if m.aiModel != "" {
			fmt.Fprintf(&b, "AI_MODEL=%s\n", m.aiModel)
		}
		fmt.Fprintf(&b, "PORT=%s\n", m.port)

		if err := os.WriteFile(".env", []byte(b.String()), 0o600); err != nil {
			return errMsg{fmt.Errorf("failed to write .env: %w", err)}
		}
		return envWrittenMsg{}
	}
}

func probeHealth(port string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 3 * time.Second}
		resp, err := client.Get(fmt.Sprintf("http://localhost:%s/health", port))
		if err != nil {
			return healthMsg{ok: false}
		}
		defer resp.Body.Close()
		return healthMsg{ok: resp.StatusCode == http.StatusOK}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "q":
			if m.step == stepSelectingBackend || m.step == stepComplete {
				m.quitting = true
				return m, tea.Quit
			}
			m.currentInput += "q"

		case "up", "k":
			if m.step == stepSelectingBackend && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.step == stepSelectingBackend && m.cursor < len(backendChoices)-1 {
				m.cursor++
			}

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			if m.step == stepEnteringDBURL || m.step == stepEnteringAPIKey || m.step == stepEnteringModel || m.step == stepEnteringPort {
				m.currentInput += msg.String()
			}

		case "enter":
			switch m.step {
			case stepSelectingBackend:
				m.useMemory = m.cursor == 1
				if m.useMemory {
					m.step = stepEnteringAPIKey
				} else {
					m.step = stepEnteringDBURL
				}

			case stepEnteringDBURL:
				if m.currentInput != "" {
					m.dbURL = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringAPIKey
				}

			case stepEnteringAPIKey:
				// Empty is allowed; the advisor falls back to an apology.
				m.apiKey = m.currentInput
				m.currentInput = ""
				m.step = stepEnteringModel

			case stepEnteringModel:
				m.aiModel = m.currentInput
				m.currentInput = ""
				m.step = stepEnteringPort

			case stepEnteringPort:
				m.port = m.currentInput
				if m.port == "" {
					m.port = "8080"
				}
				m.currentInput = ""
				m.step = stepWritingEnv
				m.message = "Writing .env..."
				return m, writeEnv(m)

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case envWrittenMsg:
		m.step = stepProbingHealth
		m.message = successStyle.Render("✓ .env written")
		return m, probeHealth(m.port)

	case healthMsg:
		m.step = stepComplete
		if msg.ok {
			m.message = successStyle.Render("✓ .env written, server is up on port " + m.port)
		} else {
			m.message = successStyle.Render("✓ .env written") +
				"\nServer not running yet; start it with: go run ."
		}

	case errMsg:
		m.step = stepComplete
		m.message = errorStyle.Render("✗ " + msg.err.Error())
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("💰 FinanceTracker Setup\n\n"))

	switch m.step {
	case stepSelectingBackend:
		s.WriteString(promptStyle.Render("Select a storage backend:\n\n"))
		for i, choice := range backendChoices {
			cursor := " "
			style := normalStyle
			if m.cursor == i {
				cursor = ">"
				style = selectedStyle
			}
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, style.Render(choice)))
		}
		s.WriteString("\nUse ↑/↓, Enter to select, q to quit\n")

	case stepEnteringDBURL:
		s.WriteString(promptStyle.Render("Enter the Postgres connection URL:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringAPIKey:
		s.WriteString(promptStyle.Render("Enter your OpenAI API key (blank to skip):\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringModel:
		s.WriteString(promptStyle.Render("Enter the model name (blank for default):\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPort:
		s.WriteString(promptStyle.Render("Enter the server port (blank for 8080):\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepWritingEnv, stepProbingHealth:
		s.WriteString(m.message + "\n")

	case stepComplete:
		s.WriteString(m.message + "\n")
		s.WriteString("\nPress Enter to exit\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
