package invite

import (
	"chat-shell/contract"
	"chat-shell/domain"
	"chat-shell/domain/action"
	errs "chat-shell/errors"
	"context"
	"fmt"
	"log/slog"
)

// Orchestrator resolves what one "invite these addresses" gesture means —
// a fresh direct chat, the reuse of an existing one, or a multi-user room —
// performs it, and reports failures through modal dialogs. Success is
// silent.
type Orchestrator struct {
	log        *slog.Logger
	session    contract.Session
	creator    contract.RoomCreator
	inviter    contract.Inviter
	dm         contract.DMIndex
	modals     contract.Modals
	loc        contract.Localizer
	dispatcher contract.Dispatcher
}

func NewOrchestrator(log *slog.Logger, session contract.Session, creator contract.RoomCreator,
	inviter contract.Inviter, dm contract.DMIndex, modals contract.Modals,
	loc contract.Localizer, dispatcher contract.Dispatcher) *Orchestrator {
	return &Orchestrator{
		log:        log,
		session:    session,
		creator:    creator,
		inviter:    inviter,
		dm:         dm,
		modals:     modals,
		loc:        loc,
		dispatcher: dispatcher,
	}
}

// InviteToRoom invites every address to an existing room and reports
// failures. The result set is returned unchanged regardless of reporting.
func (o *Orchestrator) InviteToRoom(ctx context.Context, roomID domain.RoomID, addresses []domain.Address) (*domain.InviteResultSet, error) {
	if len(addresses) == 0 {
		return nil, errs.ErrNoAddresses
	}
	set := o.inviter.Invite(ctx, roomID, addresses)
	o.reportFailures(set)
	return set, nil
}

// StartChat resolves the start-chat gesture:
//   - one account identifier with a joined DM room → chooser (reuse or fresh)
//   - one account identifier otherwise → fresh direct-message room
//   - one third-party identifier → fresh direct-message room keyed by it
//   - several addresses → fresh room, then a multi-address invite
//
// The chooser path returns a nil result set: the outcome is deferred to the
// user's choice, which re-enters the flow as a dispatched action.
func (o *Orchestrator) StartChat(ctx context.Context, addresses []domain.Address) (*domain.InviteResultSet, error) {
	switch {
	case len(addresses) == 0:
		return nil, errs.ErrNoAddresses
	case len(addresses) == 1 && addresses[0].Kind == domain.AddressUser:
		return o.startDirectChat(ctx, addresses[0])
	case len(addresses) == 1:
		_, err := o.createRoom(ctx, domain.CreateRoomOptions{DMEmail: addresses[0].Value})
		return nil, err
	default:
		roomID, err := o.createRoom(ctx, domain.CreateRoomOptions{})
		if err != nil {
			return nil, err
		}
		set := o.inviter.Invite(ctx, roomID, addresses)
		o.reportFailures(set)
		return set, nil
	}
}

func (o *Orchestrator) startDirectChat(ctx context.Context, addr domain.Address) (*domain.InviteResultSet, error) {
	if roomID, ok := o.joinedDMRoom(addr.Value); ok {
		o.showReuseChooser(addr, roomID)
		return nil, nil
	}
	_, err := o.createRoom(ctx, domain.CreateRoomOptions{DMUserID: addr.Value})
	return nil, err
}

// joinedDMRoom returns an existing direct-message room with the user that
// the caller is still joined to, if any.
func (o *Orchestrator) joinedDMRoom(userID string) (domain.RoomID, bool) {
	for _, roomID := range o.dm.RoomsForUser(userID) {
		room, err := o.session.Room(roomID)
		if err != nil {
			o.log.Debug("Skipping unknown DM room", "room", string(roomID), "error", err)
			continue
		}
		if room.IsJoined() {
			return roomID, true
		}
	}
	return "", false
}

func (o *Orchestrator) showReuseChooser(addr domain.Address, roomID domain.RoomID) {
	o.modals.Chooser(contract.ChooserOptions{
		Title:          o.loc.T("chooser.title", nil),
		Description:    o.loc.T("chooser.description", map[string]string{"user": addr.Value}),
		PrimaryLabel:   o.loc.T("chooser.start_new", nil),
		SecondaryLabel: o.loc.T("chooser.open_existing", nil),
		OnPrimary: func() {
			o.dispatcher.Dispatch(action.StartChat{})
		},
		OnSecondary: func() {
			o.dispatcher.Dispatch(action.ViewRoom{RoomID: roomID})
		},
	})
}

// createRoom creates the room and views it. Creation failure is terminal:
// it is reported immediately and nothing is retried.
func (o *Orchestrator) createRoom(ctx context.Context, opts domain.CreateRoomOptions) (domain.RoomID, error) {
	roomID, err := o.creator.CreateRoom(ctx, opts)
	if err != nil {
		description := o.loc.T("invite.create_failed", nil)
		if err.Error() != "" {
			description = err.Error()
		}
		o.modals.ErrorReport(o.loc.T("invite.failed_title", nil), description)
		return "", fmt.Errorf("create room: %w", err)
	}
	o.dispatcher.Dispatch(action.ViewRoom{RoomID: roomID})
	return roomID, nil
}

// reportFailures surfaces an invite result set. One fatally failed address
// gets a single-message report with that address's error text only; listing
// the others would be misleading since they were never really attempted.
func (o *Orchestrator) reportFailures(set *domain.InviteResultSet) {
	failed := set.Failed()
	switch {
	case len(failed) == 0:
		return
	case len(failed) == 1 && set.Fatal():
		o.modals.ErrorReport(o.loc.T("invite.failed_title", nil), set.ErrorText(failed[0]))
	default:
		o.modals.InviteFailures(o.loc.T("invite.failed_some_title", nil), set.Failures())
	}
}

// ShowStartChatDialog opens the address picker for starting a new chat.
// Declining the dialog is an expected no-op.
func (o *Orchestrator) ShowStartChatDialog() {
	o.modals.AddressPicker(contract.AddressPickerOptions{
		Title:       o.loc.T("dialog.start_chat.title", nil),
		Description: o.loc.T("dialog.start_chat.description", nil),
		Button:      o.loc.T("dialog.start_chat.button", nil),
		ValidKinds:  []domain.AddressKind{domain.AddressUser, domain.AddressEmail},
		OnFinished: func(confirmed bool, addresses []domain.Address) {
			if !confirmed {
				return
			}
			if _, err := o.StartChat(context.Background(), addresses); err != nil {
				o.log.Warn("Start chat failed", "error", err)
			}
		},
	})
}

// ShowRoomInviteDialog opens the address picker for inviting into an
// existing room.
func (o *Orchestrator) ShowRoomInviteDialog(roomID domain.RoomID) {
	o.modals.AddressPicker(contract.AddressPickerOptions{
		Title:       o.loc.T("dialog.invite.title", nil),
		Description: o.loc.T("dialog.invite.description", map[string]string{"room": o.roomName(roomID)}),
		Button:      o.loc.T("dialog.invite.button", nil),
		ValidKinds:  []domain.AddressKind{domain.AddressUser, domain.AddressEmail},
		OnFinished: func(confirmed bool, addresses []domain.Address) {
			if !confirmed {
				return
			}
			if _, err := o.InviteToRoom(context.Background(), roomID, addresses); err != nil {
				o.log.Warn("Invite failed", "room", string(roomID), "error", err)
			}
		},
	})
}

func (o *Orchestrator) roomName(roomID domain.RoomID) string {
	room, err := o.session.Room(roomID)
	if err != nil || room.Name == "" {
		return string(roomID)
	}
	return room.Name
}
