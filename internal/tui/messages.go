package tui

type copiedMsg struct {
	what string
}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
