package ui_test

import (
	"bytes"
	"chat-shell/contract"
	"chat-shell/domain"
	"chat-shell/i18n"
	"chat-shell/ui"
	"log/slog"
	"strings"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newModals(t *testing.T, input string) (*ui.TerminalModals, *bytes.Buffer) {
	t.Helper()
	bundle, err := i18n.LoadEmbedded()
	require.NoError(t, err)
	out := &bytes.Buffer{}
	modals := ui.NewTerminalModals(logs.GetLoggerFromLevel(slog.LevelDebug),
		strings.NewReader(input), out, bundle.For("en-US"), false)
	return modals, out
}

func TestErrorReport_Prints_Title_And_Description(t *testing.T) {
	req := require.New(t)
	modals, out := newModals(t, "")

	modals.ErrorReport("Failed to invite", "server unreachable")

	req.Contains(out.String(), "Failed to invite")
	req.Contains(out.String(), "server unreachable")
}

func TestInviteFailures_Lists_Every_Failed_Address(t *testing.T) {
	req := require.New(t)
	modals, out := newModals(t, "")

	modals.InviteFailures("Failed to invite the following users", []domain.AddressFailure{
		{Address: domain.Address{Value: "@bob:shell.chat", Kind: domain.AddressUser}, Reason: "already in the room"},
		{Address: domain.Address{Value: "carol@example.com", Kind: domain.AddressEmail}, Reason: "unknown address"},
	})

	req.Contains(out.String(), "@bob:shell.chat")
	req.Contains(out.String(), "already in the room")
	req.Contains(out.String(), "carol@example.com")
	req.Contains(out.String(), "unknown address")
}

func TestChooser_Runs_The_Picked_Outcome(t *testing.T) {
	req := require.New(t)
	modals, _ := newModals(t, "2\n")

	var picked string
	modals.Chooser(contract.ChooserOptions{
		Title:          "Start a chat",
		PrimaryLabel:   "new",
		SecondaryLabel: "existing",
		OnPrimary:      func() { picked = "new" },
		OnSecondary:    func() { picked = "existing" },
	})

	req.Equal("existing", picked)
}

func TestAddressPicker_Filters_Invalid_Kinds(t *testing.T) {
	req := require.New(t)
	modals, _ := newModals(t, "@bob:shell.chat, carol@example.com, not-an-address\n")

	var got []domain.Address
	confirmed := false
	modals.AddressPicker(contract.AddressPickerOptions{
		ValidKinds: []domain.AddressKind{domain.AddressUser, domain.AddressEmail},
		OnFinished: func(ok bool, addresses []domain.Address) {
			confirmed = ok
			got = addresses
		},
	})

	req.True(confirmed)
	req.Len(got, 2)
	req.Equal("@bob:shell.chat", got[0].Value)
	req.Equal("carol@example.com", got[1].Value)
}

func TestAddressPicker_Empty_Line_Declines(t *testing.T) {
	req := require.New(t)
	modals, _ := newModals(t, "\n")

	confirmed := true
	modals.AddressPicker(contract.AddressPickerOptions{
		ValidKinds: []domain.AddressKind{domain.AddressUser},
		OnFinished: func(ok bool, _ []domain.Address) { confirmed = ok },
	})

	req.False(confirmed)
}
