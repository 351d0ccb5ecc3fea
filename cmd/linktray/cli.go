package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/mwalczak/linktray"
	"github.com/mwalczak/linktray/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Config   *linktray.Config
	DB       *sqlite.DB
	Store    linktray.LinkStore
	Pages    linktray.PageAccessor
	Clip     linktray.Clipboard
	Capturer *linktray.Capturer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Capture CaptureCmd `cmd:"" help:"Capture a link from the active browser page"`
	List    ListCmd    `cmd:"" help:"Print the captured links"`
	Copy    CopyCmd    `cmd:"" help:"Copy captured links to the clipboard"`
	Remove  RemoveCmd  `cmd:"" help:"Remove the link at a position"`
	Clear   ClearCmd   `cmd:"" help:"Delete all captured links"`
	Export  ExportCmd  `cmd:"" help:"Write the list to stdout as text, markdown, or XBEL"`
	Panel   PanelCmd   `cmd:"" help:"Open the interactive panel"`
}

// CaptureCmd is the "capture" subcommand. Without flags it behaves like the
// keyboard shortcut and inspects the page's hover and selection state.
type CaptureCmd struct {
	Link      string `short:"l" xor:"source" help:"URL of the right-clicked link"`
	Selection string `short:"s" xor:"source" help:"Selected text, captured only if it is a URL"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// CopyCmd is the "copy" subcommand.
type CopyCmd struct {
	Position int  `arg:"" optional:"" help:"1-based position to copy; omit for all"`
	Markdown bool `short:"m" help:"Format as markdown"`
	Bulleted bool `short:"b" help:"Prefix each line with a bullet"`
}

// RemoveCmd is the "remove" subcommand.
type RemoveCmd struct {
	Position int `arg:"" help:"1-based position to remove"`
}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	Force   bool `help:"Confirm deletion"`
	Session bool `help:"Also start a fresh session"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Format string `default:"plain" enum:"plain,markdown,xbel" help:"Output format"`
}

// PanelCmd is the "panel" subcommand.
type PanelCmd struct{}
