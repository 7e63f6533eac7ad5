// Package ui implements the modal-presentation collaborator for a terminal.
// Dialogs render as colorized blocks; the chooser and the address picker
// read their answers from the wrapped input stream.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"chat-shell/contract"
	"chat-shell/domain"
)

// TerminalModals presents dialogs on a terminal. Colours can be disabled
// for dumb terminals and test output.
type TerminalModals struct {
	log     *slog.Logger
	in      *bufio.Reader
	out     io.Writer
	loc     contract.Localizer
	colours bool
}

func NewTerminalModals(log *slog.Logger, in io.Reader, out io.Writer, loc contract.Localizer, colours bool) *TerminalModals {
	return &TerminalModals{
		log:     log,
		in:      bufio.NewReader(in),
		out:     out,
		loc:     loc,
		colours: colours,
	}
}

func (m *TerminalModals) header(title string) string {
	header := fmt.Sprintf("  ====== %s ======", title)
	if m.colours {
		header = color.New(color.BgBlack, color.FgRed).Render(header)
	}
	return header
}

// ErrorReport displays a titled, described error block.
func (m *TerminalModals) ErrorReport(title, description string) {
	fmt.Fprintln(m.out, m.header(title))
	fmt.Fprintf(m.out, "  %s\n", description)
}

// InviteFailures displays one row per failed address with its own reason.
func (m *TerminalModals) InviteFailures(title string, failures []domain.AddressFailure) {
	fmt.Fprintln(m.out, m.header(title))
	table := tablewriter.NewWriter(m.out)
	table.SetHeader([]string{
		m.loc.T("report.address_header", nil),
		m.loc.T("report.reason_header", nil),
	})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, failure := range failures {
		table.Append([]string{failure.Address.Value, failure.Reason})
	}
	table.Render()
}

// Chooser prints both outcomes and runs the callback for the picked one.
// Anything other than "1" or "2" dismisses the dialog.
func (m *TerminalModals) Chooser(opts contract.ChooserOptions) {
	fmt.Fprintln(m.out, m.header(opts.Title))
	fmt.Fprintf(m.out, "  %s\n", opts.Description)
	fmt.Fprintf(m.out, "  [1] %s\n  [2] %s\n> ", opts.PrimaryLabel, opts.SecondaryLabel)
	switch m.readLine() {
	case "1":
		opts.OnPrimary()
	case "2":
		opts.OnSecondary()
	default:
		m.log.Debug("Chooser dismissed")
	}
}

// AddressPicker reads a comma-separated address list, classifies each entry
// and keeps only the kinds the dialog accepts. An empty line declines.
func (m *TerminalModals) AddressPicker(opts contract.AddressPickerOptions) {
	fmt.Fprintln(m.out, m.header(opts.Title))
	fmt.Fprintf(m.out, "  %s\n", opts.Description)
	fmt.Fprintf(m.out, "  [%s]> ", opts.Button)

	line := m.readLine()
	if line == "" {
		opts.OnFinished(false, nil)
		return
	}

	picked := lo.FilterMap(strings.Split(line, ","), func(raw string, _ int) (domain.Address, bool) {
		addr := domain.ClassifyAddress(raw)
		return addr, lo.Contains(opts.ValidKinds, addr.Kind)
	})
	opts.OnFinished(true, picked)
}

func (m *TerminalModals) readLine() string {
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
