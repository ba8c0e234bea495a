package state

// FeedbackCategory tags a notification with its outcome class. The tag is
// attached where the notification is produced; the renderer maps each tag to
// its own visual treatment and never inspects the message text.
type FeedbackCategory int

const (
	// CategorySuccess reports a completed link or move
	CategorySuccess FeedbackCategory = iota
	// CategoryCancelled reports a gesture the user abandoned
	CategoryCancelled
	// CategoryAlreadyExists reports a rejected duplicate relationship
	CategoryAlreadyExists
	// CategoryCircular reports a rejected circular relationship
	CategoryCircular
	// CategoryError reports a failed persistence call
	CategoryError
)

// Notification is a single user-facing message with its outcome category.
type Notification struct {
	Category FeedbackCategory
	Message  string
}

// NotificationState holds the single current notification. Showing a new
// message replaces the old one and restarts its expiry; an expiry tick for a
// replaced message carries a stale sequence and is ignored.
type NotificationState struct {
	// current is the visible notification, nil when the slot is empty
	current *Notification

	// seq numbers shown notifications so stale expiry ticks can be told
	// apart from the tick for the message on screen
	seq int
}

// NewNotificationState creates a NotificationState with an empty slot.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Show replaces the current notification and returns the sequence the
// caller must attach to the expiry tick for this message.
func (s *NotificationState) Show(category FeedbackCategory, message string) int {
	s.seq++
	s.current = &Notification{Category: category, Message: message}
	return s.seq
}

// Expire clears the notification if seq still identifies the message on
// screen. It reports whether the clear applied.
func (s *NotificationState) Expire(seq int) bool {
	if s.current == nil || seq != s.seq {
		return false
	}
	s.current = nil
	return true
}

// Current returns the visible notification, nil when the slot is empty.
func (s *NotificationState) Current() *Notification {
	return s.current
}

// Clear empties the slot immediately, stranding any pending expiry tick.
func (s *NotificationState) Clear() {
	if s.current == nil {
		return
	}
	s.seq++
	s.current = nil
}
