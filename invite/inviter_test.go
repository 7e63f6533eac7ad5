package invite_test

import (
	"chat-shell/domain"
	"chat-shell/errors"
	"chat-shell/invite"
	"chat-shell/mocks"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const roomID = domain.RoomID("!room:shell.chat")

func newInviter(t *testing.T) (*invite.MultiInviter, *mocks.MockSession) {
	t.Helper()
	ctrl := gomock.NewController(t)
	session := mocks.NewMockSession(ctrl)
	return invite.NewMultiInviter(logs.GetLoggerFromLevel(slog.LevelDebug), session), session
}

func TestMultiInviter_All_Addresses_Succeed(t *testing.T) {
	req := require.New(t)
	inviter, session := newInviter(t)
	addresses := []domain.Address{
		{Value: "@alice:shell.chat", Kind: domain.AddressUser},
		{Value: "@bob:shell.chat", Kind: domain.AddressUser},
		{Value: "carol@example.com", Kind: domain.AddressEmail},
	}
	session.EXPECT().InviteUser(gomock.Any(), roomID, "@alice:shell.chat").Return(nil)
	session.EXPECT().InviteUser(gomock.Any(), roomID, "@bob:shell.chat").Return(nil)
	session.EXPECT().InviteEmail(gomock.Any(), roomID, "carol@example.com").Return(nil)

	set := inviter.Invite(context.Background(), roomID, addresses)

	req.Len(set.Succeeded(), 3)
	req.Empty(set.Failed())
	req.False(set.Fatal())
}

func TestMultiInviter_One_Failure_Among_Three(t *testing.T) {
	req := require.New(t)
	inviter, session := newInviter(t)
	addresses := []domain.Address{
		{Value: "@alice:shell.chat", Kind: domain.AddressUser},
		{Value: "@bob:shell.chat", Kind: domain.AddressUser},
		{Value: "@carol:shell.chat", Kind: domain.AddressUser},
	}
	session.EXPECT().InviteUser(gomock.Any(), roomID, "@alice:shell.chat").Return(nil)
	session.EXPECT().InviteUser(gomock.Any(), roomID, "@bob:shell.chat").
		Return(fmt.Errorf("already in the room"))
	session.EXPECT().InviteUser(gomock.Any(), roomID, "@carol:shell.chat").Return(nil)

	set := inviter.Invite(context.Background(), roomID, addresses)

	req.Len(set.Succeeded(), 2)
	failed := set.Failed()
	req.Len(failed, 1)
	req.Equal("@bob:shell.chat", failed[0].Value)
	req.Equal("already in the room", set.ErrorText(failed[0]))
	req.False(set.Fatal())
}

func TestMultiInviter_Fatal_Failure_Marks_Batch(t *testing.T) {
	req := require.New(t)
	inviter, session := newInviter(t)
	addresses := []domain.Address{{Value: "@alice:shell.chat", Kind: domain.AddressUser}}
	session.EXPECT().InviteUser(gomock.Any(), roomID, "@alice:shell.chat").
		Return(errors.ErrNotPermitted)

	set := inviter.Invite(context.Background(), roomID, addresses)

	req.True(set.Fatal())
	req.Len(set.Failed(), 1)
	req.Equal(errors.ErrNotPermitted.Error(), set.ErrorText(addresses[0]))
}

func TestMultiInviter_Unknown_Kind_Is_Rejected(t *testing.T) {
	req := require.New(t)
	inviter, _ := newInviter(t)
	addresses := []domain.Address{{Value: "not-an-address", Kind: domain.AddressUnknown}}

	set := inviter.Invite(context.Background(), roomID, addresses)

	req.Len(set.Failed(), 1)
	req.True(set.Fatal())
}

func TestMultiInviter_Empty_Batch_Is_Harmless(t *testing.T) {
	req := require.New(t)
	inviter, _ := newInviter(t)

	set := inviter.Invite(context.Background(), roomID, nil)

	req.Empty(set.Addresses())
	req.False(set.Fatal())
}
