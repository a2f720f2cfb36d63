package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/evelynko/carnet/internal/cli/formatter"
)

// advisorAnswerMsg carries one advisory reply. Replies are appended to the
// transcript whenever they arrive; closing the panel or mutating other
// state in the meantime does not cancel or reorder them.
type advisorAnswerMsg struct {
	query string
	text  string
	err   error
}

// chatView is the advisor chat overlay. The engine only ever hands the
// collaborator a free-text query; answers are displayed verbatim.
type chatView struct {
	state *SharedState
	input textinput.Model
	lines []string

	pending int
}

func newChatView(state *SharedState) chatView {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "問問旅遊助手…"
	ti.CharLimit = 300
	return chatView{state: state, input: ti}
}

func (v chatView) focus() tea.Cmd {
	return v.input.Focus()
}

// absorb appends a reply to the transcript regardless of panel state.
func (v chatView) absorb(msg advisorAnswerMsg) chatView {
	v.pending--
	if msg.err != nil {
		v.lines = append(v.lines, formatter.StyleRed.Render("advisor: "+msg.err.Error()))
		return v
	}
	v.lines = append(v.lines, formatter.StyleGreen.Render("Advisor: ")+msg.text)
	return v
}

func (v chatView) update(msg tea.KeyMsg) (chatView, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// Closing the panel never cancels an in-flight query.
		v.state.Engine.UI().SetAdvisorExpanded(false)
		v.input.Blur()
		return v, nil
	case tea.KeyEnter:
		query := strings.TrimSpace(v.input.Value())
		v.input.Reset()
		if query == "" {
			return v, nil
		}
		v.lines = append(v.lines, formatter.Dim("You: ")+query)
		if v.state.Advisor == nil {
			v.lines = append(v.lines, formatter.Dim("advisor offline"))
			return v, nil
		}
		v.pending++
		adv := v.state.Advisor
		return v, func() tea.Msg {
			ans, err := adv.Ask(context.Background(), query)
			if err != nil {
				return advisorAnswerMsg{query: query, err: err}
			}
			return advisorAnswerMsg{query: query, text: ans.Text}
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v chatView) view() string {
	var b strings.Builder
	b.WriteString(formatter.Header("TRAVEL ADVISOR") + "\n\n")

	for _, line := range v.lines {
		b.WriteString(line + "\n")
	}
	if v.pending > 0 {
		b.WriteString(formatter.Dim("thinking…") + "\n")
	}

	b.WriteString("\n" + formatter.StylePurple.Render("ask") + formatter.Dim("> ") + v.input.View())
	b.WriteString("\n\n" + formatter.Dim("enter ask · esc close"))
	return b.String()
}
