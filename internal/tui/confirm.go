package tui

type confirmModel struct {
	title    string
	question string
}

func (m confirmModel) View() string {
	content := titleStyle.Render(m.title) + "\n\n"
	content += m.question + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
