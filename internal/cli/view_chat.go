package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/askdojo/askdojo/internal/cli/formatter"
	"github.com/askdojo/askdojo/internal/domain"
	"github.com/askdojo/askdojo/internal/responder"
	"github.com/askdojo/askdojo/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type transcriptMsg struct {
	msgs []*domain.Message
	err  error
}

type replyMsg struct {
	msg *domain.Message
	err error
}

type chatKeys struct {
	Send key.Binding
	Quit key.Binding
}

func (k chatKeys) ShortHelp() []key.Binding { return []key.Binding{k.Send, k.Quit} }

func (k chatKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// chatView is the interactive chat window. Replies arrive asynchronously;
// while one is pending the typing indicator shows and Enter is ignored.
type chatView struct {
	ctx   context.Context
	chat  service.ChatService
	input textinput.Model
	keys  chatKeys
	help  help.Model

	messages []*domain.Message
	notice   string
	err      error
	pending  bool
	quitting bool
	width    int
}

func newChatView(ctx context.Context, chat service.ChatService) *chatView {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.Placeholder = "Ask about certifications, prices, or courses"
	ti.CharLimit = 500

	return &chatView{
		ctx:   ctx,
		chat:  chat,
		input: ti,
		keys: chatKeys{
			Send: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
			Quit: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
		},
		help:  help.New(),
		width: formatter.ReplyWrapWidth,
	}
}

func (v *chatView) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, v.startCmd())
}

func (v *chatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.input.Width = max(msg.Width-8, 10)
		v.help.Width = msg.Width
		return v, nil

	case transcriptMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.messages = msg.msgs
		return v, nil

	case replyMsg:
		v.pending = false
		if msg.err != nil {
			v.notice = formatter.StyleRed.Render("  " + msg.err.Error())
			return v, nil
		}
		if msg.msg != nil {
			v.messages = append(v.messages, msg.msg)
		}
		return v, nil

	case tea.KeyMsg:
		if key.Matches(msg, v.keys.Quit) {
			v.quitting = true
			return v, tea.Quit
		}
		if key.Matches(msg, v.keys.Send) {
			return v.submit()
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *chatView) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(v.input.Value())
	if text == "" || v.pending {
		return v, nil
	}
	v.input.Reset()
	v.notice = ""

	switch strings.ToLower(text) {
	case "/quit", "/exit", "/q":
		v.quitting = true
		return v, tea.Quit
	case "/topics":
		v.notice = formatter.FormatTopics(responder.Rules(), responder.AWSRules())
		return v, nil
	case "/clear":
		return v, v.resetCmd()
	}

	v.messages = append(v.messages, &domain.Message{
		Sender:    domain.SenderUser,
		Text:      text,
		CreatedAt: time.Now(),
	})
	v.pending = true
	return v, v.sendCmd(text)
}

func (v *chatView) View() string {
	if v.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.FormatChatWelcome())
	if len(v.messages) > 0 {
		b.WriteString(formatter.FormatTranscript(v.messages, v.width))
		b.WriteString("\n\n")
	}
	if v.pending {
		b.WriteString(formatter.FormatTyping() + "\n\n")
	}
	if v.notice != "" {
		b.WriteString(v.notice + "\n")
	}
	if v.err != nil {
		b.WriteString(formatter.StyleRed.Render("  "+v.err.Error()) + "\n")
	}

	b.WriteString(formatter.StyleBlue.Render("  you") + formatter.Dim("> "))
	b.WriteString(v.input.View())
	b.WriteString("\n" + formatter.Dim("  ") + v.help.View(v.keys))
	return b.String()
}

func (v *chatView) startCmd() tea.Cmd {
	return func() tea.Msg {
		if _, err := v.chat.Start(v.ctx); err != nil {
			return transcriptMsg{err: err}
		}
		msgs, err := v.chat.Transcript(v.ctx)
		return transcriptMsg{msgs: msgs, err: err}
	}
}

func (v *chatView) resetCmd() tea.Cmd {
	return func() tea.Msg {
		if err := v.chat.Reset(v.ctx); err != nil {
			return transcriptMsg{err: err}
		}
		msgs, err := v.chat.Transcript(v.ctx)
		return transcriptMsg{msgs: msgs, err: err}
	}
}

func (v *chatView) sendCmd(text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := v.chat.Send(v.ctx, text)
		if errors.Is(err, service.ErrEmptyMessage) {
			return replyMsg{}
		}
		return replyMsg{msg: reply, err: err}
	}
}
