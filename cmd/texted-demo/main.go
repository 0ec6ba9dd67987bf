package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
	"go.uber.org/zap"

	"github.com/iw2rmb/texted"
	"github.com/iw2rmb/texted/config"
	"github.com/iw2rmb/texted/textedit"
)

const demoText = "Hello from [b]texted[/b].\nType to edit, click to move the caret.\nCtrl+Q to quit."

type reloadMsg config.Settings

type model struct {
	edit     *textedit.Model
	keys     textedit.KeyMap
	help     help.Model
	showHelp bool
}

func (m model) Init() tea.Cmd { return m.edit.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			return m, nil
		}
	case reloadMsg:
		config.Settings(msg).Apply(m.edit)
		return m, nil
	}
	_, cmd := m.edit.Update(msg)
	return m, cmd
}

var popupStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

func (m model) View() string {
	base := m.edit.View() + "\n" + m.help.View(m.keys) + "  f1 help  ctrl+q quit"
	if !m.showHelp {
		return base
	}
	popup := popupStyle.Render(m.help.FullHelpView(m.keys.FullHelp()))
	return overlay.Composite(popup, base, overlay.Center, overlay.Center, 0, 0)
}

func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

// feed appends words from a background goroutine to show queued text
// arriving while the user types.
func feed(ctx context.Context, edit *textedit.Model, log *zap.Logger) {
	words := strings.Fields("the quick brown fox jumps over the lazy dog")
	t := time.NewTicker(300 * time.Millisecond)
	defer t.Stop()
	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := edit.AppendText(words[i%len(words)] + " "); err != nil {
				log.Warn("feed stopped", zap.Error(err))
				return
			}
		}
	}
}

func run() error {
	var (
		cfgPath   = flag.String("config", "", "settings file (TOML), reloaded on change")
		multiline = flag.Bool("multiline", true, "allow multiple rows")
		password  = flag.String("password", "", "mask the text with this character")
		feedText  = flag.Bool("feed", false, "append text from a background goroutine")
		logPath   = flag.String("log", "", "write debug logs to this file")
		version   = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()
	if *version {
		fmt.Println(texted.VersionTag())
		return nil
	}

	log, err := newLogger(*logPath)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log = log.Named("texted")

	settings := config.Settings{Multiline: true, StyleTags: true}
	if *cfgPath != "" {
		if settings, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "multiline":
			settings.Multiline = *multiline
		case "password":
			settings.PasswordChar = *password
		}
	})

	edit := textedit.New(settings.EditConfig(textedit.Config{Text: demoText, Logger: log}))
	defer edit.Destroy()
	edit.Focus()

	p := tea.NewProgram(model{edit: edit, keys: textedit.DefaultKeyMap(), help: help.New()},
		tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())
	edit.AttachSender(p)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *cfgPath != "" {
		w, err := config.NewWatcher(*cfgPath, log)
		if err != nil {
			return err
		}
		defer w.Close()
		go func() {
			_ = w.Run(ctx, func(s config.Settings) { p.Send(reloadMsg(s)) })
		}()
	}
	if *feedText {
		go feed(ctx, edit, log)
	}

	_, err = p.Run()
	return err
}

func main() {
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
