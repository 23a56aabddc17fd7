package tui

// statusSink buffers coordinator notifications until the next render pass.
// The coordinator notifies synchronously mid-update; the model drains the
// buffer after every coordinator call.
type statusSink struct {
	messages []string
}

func (s *statusSink) Notify(message string) {
	s.messages = append(s.messages, message)
}

func (s *statusSink) NotifyError(err error) {
	if err == nil {
		return
	}
	s.messages = append(s.messages, humanizeError(err))
}

// drain returns and clears the buffered messages.
func (s *statusSink) drain() []string {
	out := s.messages
	s.messages = nil
	return out
}

// armedConfirmer bridges the coordinator's synchronous confirmation call and
// the asynchronous confirm overlay. The first run of a delete command finds
// the confirmer unarmed: the answer is no, but the question is captured so
// the model can show the overlay. When the user answers yes the model arms
// the confirmer and re-runs the same command, which now proceeds.
type armedConfirmer struct {
	armed bool

	lastTitle    string
	lastQuestion string
}

func (c *armedConfirmer) Confirm(title, question string) bool {
	c.lastTitle = title
	c.lastQuestion = question
	answer := c.armed
	c.armed = false
	return answer
}
