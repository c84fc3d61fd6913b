package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/ql/internal/culler"
	"github.com/nikbrunner/ql/internal/engine"
	"github.com/nikbrunner/ql/internal/exporter"
	"github.com/nikbrunner/ql/internal/importer"
	"github.com/nikbrunner/ql/internal/picker"
	"github.com/nikbrunner/ql/internal/search"
	"github.com/nikbrunner/ql/internal/sitemeta"
	"github.com/nikbrunner/ql/internal/storage"
	"github.com/nikbrunner/ql/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "add":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: ql add <url> [name]\n")
				os.Exit(1)
			}
			var name string
			if len(os.Args) >= 4 {
				name = strings.Join(os.Args[3:], " ")
			}
			runAdd(os.Args[2], name)
			return
		case "import":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: ql import <file.html>\n")
				os.Exit(1)
			}
			runImport(os.Args[2])
			return
		case "export":
			// Export with optional path
			var outputPath string
			if len(os.Args) >= 3 {
				outputPath = os.Args[2]
			}
			runExport(outputPath)
			return
		case "check":
			runCheck()
			return
		default:
			// Treat as search query (join all remaining args)
			query := strings.Join(os.Args[1:], " ")
			runQuickOpen(query)
			return
		}
	}

	// No args - run the panel TUI
	runPanel()
}

func printHelp() {
	fmt.Println(`ql - quick links panel

Usage:
    ql                  Open the panel
    ql <query>          Fuzzy-search shortcut names and open the match
    ql add <url> [name] Add a shortcut (name fetched from the page if omitted)
    ql import <file>    Import shortcuts from a bookmark HTML file
    ql export [file]    Export shortcuts to bookmark HTML
    ql check            Check all shortcut URLs for dead links
    ql help             Show this help

Panel keys:
    j/k         Move cursor
    o/enter     Open shortcut in browser
    a           Add shortcut
    e           Edit shortcut
    d           Delete shortcut
    m/space     Grab item / drop it (reorder with j/k while grabbed)
    Y           Copy URL to clipboard
    q           Quit`)
}

// loadEngine opens storage and bootstraps the engine.
func loadEngine() *engine.Engine {
	kv, err := storage.OpenStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}

	configPath, err := storage.DefaultConfigFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		os.Exit(1)
	}
	config, err := storage.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	eng := engine.New(engine.Params{
		KV:           kv,
		IconProvider: config.IconProvider,
	})
	if err := eng.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading shortcuts: %v\n", err)
		os.Exit(1)
	}
	return eng
}

func loadConfig() *storage.Config {
	configPath, err := storage.DefaultConfigFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		os.Exit(1)
	}
	config, err := storage.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return config
}

func runPanel() {
	eng := loadEngine()
	defer eng.Close()

	app := tui.NewApp(tui.AppParams{
		Engine:  eng,
		OpenURL: openURL,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running panel: %v\n", err)
		os.Exit(1)
	}
}

// runQuickOpen performs a fuzzy search and opens the selected shortcut.
func runQuickOpen(query string) {
	eng := loadEngine()
	defer eng.Close()

	results := search.FuzzySearch(eng.Shortcuts(), query)

	if len(results) == 0 {
		fmt.Printf("No shortcuts found for '%s'\n", query)
		return
	}

	if len(results) == 1 {
		// Single result - open it directly
		fmt.Printf("Opening: %s\n", results[0].Shortcut.Name)
		if err := openURL(results[0].Shortcut.URL); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening URL: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Multiple results - show picker
	p := picker.New(results, query)
	program := tea.NewProgram(p)
	finalModel, err := program.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
		os.Exit(1)
	}

	finalPicker := finalModel.(picker.Picker)
	if finalPicker.Cancelled() {
		return
	}

	selected, ok := finalPicker.Selected()
	if !ok {
		return
	}
	if err := openURL(selected.URL); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening URL: %v\n", err)
		os.Exit(1)
	}
}

// runAdd adds a single shortcut from the command line.
func runAdd(url, name string) {
	eng := loadEngine()
	defer eng.Close()

	if name == "" {
		// Best effort: prefill the name from the page title
		if title, err := sitemeta.NewClient().Title(url); err == nil {
			name = title
		}
	}

	id, err := eng.AddOrEdit("", name, url)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrInvalidURL):
			fmt.Fprintf(os.Stderr, "Invalid URL: %s\n", url)
		case errors.Is(err, engine.ErrDuplicateURL):
			fmt.Fprintf(os.Stderr, "Shortcut already exists: %s\n", url)
		default:
			fmt.Fprintf(os.Stderr, "Error adding shortcut: %v\n", err)
		}
		os.Exit(1)
	}

	s, _ := eng.Get(id)
	fmt.Printf("Added: %s (%s)\n", displayOrDash(s.Name), s.URL)
}

// runImport imports shortcuts from a Netscape bookmark HTML file.
func runImport(path string) {
	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	entries, err := importer.ParseHTMLBookmarks(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing bookmarks: %v\n", err)
		os.Exit(1)
	}

	eng := loadEngine()
	defer eng.Close()

	added, skipped := 0, 0
	for _, entry := range entries {
		if _, err := eng.AddOrEdit("", entry.Name, entry.URL); err != nil {
			skipped++
			continue
		}
		added++
	}

	fmt.Printf("Imported %d shortcuts (%d skipped)\n", added, skipped)
}

// runExport exports shortcuts to a Netscape bookmark HTML file.
func runExport(outputPath string) {
	eng := loadEngine()
	defer eng.Close()

	if outputPath == "" {
		path, err := exporter.DefaultExportPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting export path: %v\n", err)
			os.Exit(1)
		}
		outputPath = path
	}

	content := exporter.ExportHTML(eng.Shortcuts())
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing export: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported to %s\n", outputPath)
}

// runCheck checks all shortcut URLs for dead links.
func runCheck() {
	eng := loadEngine()
	defer eng.Close()
	config := loadConfig()

	shortcuts := eng.Shortcuts()
	if len(shortcuts) == 0 {
		fmt.Println("No shortcuts to check")
		return
	}

	fmt.Printf("Checking %d shortcuts...\n", len(shortcuts))
	results := culler.CheckURLs(shortcuts, 10, 10*time.Second, config.CheckExcludeDomains,
		func(completed, total int) {
			fmt.Printf("\r%d/%d", completed, total)
		})
	fmt.Println()

	problems := 0
	for _, result := range results {
		switch result.Status {
		case culler.Dead:
			problems++
			fmt.Printf("DEAD        %s (%d) %s\n", result.Shortcut.URL, result.StatusCode, displayOrDash(result.Shortcut.Name))
		case culler.Unreachable:
			problems++
			fmt.Printf("UNREACHABLE %s (%s) %s\n", result.Shortcut.URL, result.Error, displayOrDash(result.Shortcut.Name))
		}
	}

	if problems == 0 {
		fmt.Println("All shortcuts are healthy")
	}
}

func displayOrDash(name string) string {
	if name == "" {
		return "-"
	}
	return name
}

// openURL opens a URL in the default browser.
func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}
