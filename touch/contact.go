package touch

// Wire values of the single supported contact.
const (
	ContactSlot  = 0
	TrackingID   = 64
	NoTrackingID = -1
)

// Contact is an active touch contact.
type Contact struct {
	Slot       int
	TrackingID int
}

// ContactStateMachine tracks the lifecycle of the single contact.
// A nil contact is the Idle state; a non-nil contact is Tracking.
type ContactStateMachine struct {
	contact *Contact
}

// Tracking reports whether a contact is active.
func (m *ContactStateMachine) Tracking() bool {
	return m.contact != nil
}

// Contact returns the active contact, if any.
func (m *ContactStateMachine) Contact() (Contact, bool) {
	if m.contact == nil {
		return Contact{}, false
	}
	return *m.contact, true
}

// Begin moves Idle to Tracking and returns the commands declaring a finger
// down at pos. It returns nil when a contact is already active.
func (m *ContactStateMachine) Begin(pos Position) []Command {
	if m.contact != nil {
		return nil
	}
	m.contact = &Contact{Slot: ContactSlot, TrackingID: TrackingID}

	cmds := make([]Command, 0, 9)
	cmds = append(cmds,
		Command{OpSlot, int64(m.contact.Slot)},
		Command{OpTrackingID, int64(m.contact.TrackingID)},
	)
	cmds = append(cmds, mtPosition(pos)...)
	cmds = append(cmds,
		Command{OpTouch, 1},
		Command{OpToolFinger, 1},
	)
	cmds = append(cmds, legacyPosition(pos)...)
	return append(cmds, Command{OpSync, 0})
}

// End moves Tracking to Idle and returns the commands lifting the finger.
// It returns nil when no contact is active.
func (m *ContactStateMachine) End() []Command {
	if m.contact == nil {
		return nil
	}
	m.contact = nil
	return []Command{
		{OpTrackingID, NoTrackingID},
		{OpTouch, 0},
		{OpToolFinger, 0},
		{OpSync, 0},
	}
}

// Refresh returns the commands re-stating pos for the active contact, or nil
// when Idle.
func (m *ContactStateMachine) Refresh(pos Position) []Command {
	if m.contact == nil {
		return nil
	}
	cmds := make([]Command, 0, 5)
	cmds = append(cmds, mtPosition(pos)...)
	cmds = append(cmds, legacyPosition(pos)...)
	return append(cmds, Command{OpSync, 0})
}

func mtPosition(pos Position) []Command {
	return []Command{
		{OpMTPositionX, int64(pos.X)},
		{OpMTPositionY, int64(pos.Y)},
	}
}

func legacyPosition(pos Position) []Command {
	return []Command{
		{OpPositionX, int64(pos.X)},
		{OpPositionY, int64(pos.Y)},
	}
}
