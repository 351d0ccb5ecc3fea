package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwalczak/linktray"
	"github.com/mwalczak/linktray/bubbletea"
)

// Run executes the panel command. Store subscriptions feed the running
// program so in-process changes appear immediately; the panel's own poll
// ticker picks up captures from other processes.
func (c *PanelCmd) Run(deps *Dependencies) error {
	model := bubbletea.New(deps.Store, deps.Clip, deps.Logger, deps.Config.Markdown)
	p := tea.NewProgram(model, tea.WithAltScreen())

	cancel := deps.Store.Subscribe(func(links []linktray.Link) {
		p.Send(bubbletea.LinksMsg(links))
	})
	defer cancel()

	_, err := p.Run()
	return err
}
