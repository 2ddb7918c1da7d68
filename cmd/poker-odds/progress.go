package main

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

type progressMsg struct {
	done, total uint64
}

type playerMsg int

type progressModel struct {
	bar     progress.Model
	player  int
	percent float64
}

func newProgressModel() progressModel {
	return progressModel{
		bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case playerMsg:
		m.player = int(msg)
		m.percent = 0
	case progressMsg:
		if msg.total > 0 {
			m.percent = float64(msg.done) / float64(msg.total)
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	return fmt.Sprintf("Player %d %s\n", m.player, m.bar.ViewAs(m.percent))
}

// progressDisplay draws enumeration progress while players are calculated
type progressDisplay struct {
	program *tea.Program
	done    chan struct{}
	once    sync.Once
}

func startProgress(ctx context.Context, w io.Writer) *progressDisplay {
	p := tea.NewProgram(newProgressModel(),
		tea.WithContext(ctx),
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler())

	d := &progressDisplay{program: p, done: make(chan struct{})}
	go func() {
		defer close(d.done)
		_, _ = p.Run()
	}()
	return d
}

// Player switches the display to the given zero-based seat
func (d *progressDisplay) Player(seat int) {
	d.program.Send(playerMsg(seat + 1))
}

// Update is an odds.ProgressFunc
func (d *progressDisplay) Update(done, total uint64) {
	d.program.Send(progressMsg{done: done, total: total})
}

// Stop ends the program and waits for it to restore the terminal
func (d *progressDisplay) Stop() {
	d.once.Do(func() {
		d.program.Quit()
		<-d.done
	})
}
