package report

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// ProgressMsg reports finished runs to the progress view.
type ProgressMsg struct {
	Done  int
	Total int
}

type finishedMsg struct{ err error }

// progressModel is a single progress bar that quits when the work ends.
type progressModel struct {
	title    string
	bar      progress.Model
	done     int
	total    int
	err      error
	finished bool
	cancel   context.CancelFunc
}

func newProgressModel(title string, cancel context.CancelFunc) progressModel {
	return progressModel{
		title:  title,
		bar:    progress.New(progress.WithDefaultGradient()),
		cancel: cancel,
	}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = max(10, min(msg.Width-4, 80))
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			if m.cancel != nil {
				m.cancel()
			}
		}
	case ProgressMsg:
		m.done, m.total = msg.Done, msg.Total
	case finishedMsg:
		m.err = msg.err
		m.finished = true
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) percent() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

func (m progressModel) View() string {
	if m.finished {
		return ""
	}
	return fmt.Sprintf("%s\n%s %s\n",
		styleTitle.Render(m.title),
		m.bar.ViewAs(m.percent()),
		styleMuted.Render(fmt.Sprintf("%d/%d runs", m.done, m.total)))
}

// RunWithProgress executes work while drawing a progress bar on out.
// Ctrl+C cancels the context handed to work.
func RunWithProgress(ctx context.Context, out io.Writer, title string, work func(ctx context.Context, progress func(done, total int)) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newProgressModel(title, cancel), tea.WithOutput(out), tea.WithContext(ctx))
	go func() {
		err := work(ctx, func(done, total int) {
			p.Send(ProgressMsg{Done: done, Total: total})
		})
		p.Send(finishedMsg{err: err})
	}()

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("progress view: %w", err)
	}
	if m, ok := final.(progressModel); ok {
		return m.err
	}
	return nil
}
