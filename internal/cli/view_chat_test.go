package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/askdojo/askdojo/internal/domain"
	"github.com/askdojo/askdojo/internal/responder"
	"github.com/askdojo/askdojo/internal/service"
	"github.com/askdojo/askdojo/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatDriver(t *testing.T, chat service.ChatService) (*teatest.Driver, *chatView) {
	t.Helper()
	v := newChatView(context.Background(), chat)
	d := teatest.New(t, v, teatest.WithSize(100, 40))
	d.DrainInit()
	return d, v
}

// blockingChat answers Start and Transcript normally but holds Send until
// release is closed.
type blockingChat struct {
	service.ChatService
	release chan struct{}
}

func (b *blockingChat) Send(ctx context.Context, text string) (*domain.Message, error) {
	<-b.release
	return b.ChatService.Send(ctx, text)
}

type failingStartChat struct {
	service.ChatService
}

func (failingStartChat) Start(context.Context) (*domain.Message, error) {
	return nil, errors.New("store unavailable")
}

func TestChatView_InitShowsWelcome(t *testing.T) {
	_, v := chatDriver(t, testApp(t).Chat)

	require.Len(t, v.messages, 1)
	assert.Equal(t, service.WelcomeMessage, v.messages[0].Text)
	assert.Equal(t, 100, v.width)
}

func TestChatView_SendAppendsBothTurns(t *testing.T) {
	d, v := chatDriver(t, testApp(t).Chat)

	d.Submit("hello")

	require.Len(t, v.messages, 3)
	assert.Equal(t, domain.SenderUser, v.messages[1].Sender)
	assert.Equal(t, "hello", v.messages[1].Text)
	assert.Equal(t, responder.GreetingText, v.messages[2].Text)
	assert.False(t, v.pending)
	assert.Empty(t, v.input.Value())
	assert.Contains(t, d.View(), "Hello! Welcome to Tutorials Dojo.")
}

func TestChatView_BlankInputIgnored(t *testing.T) {
	d, v := chatDriver(t, testApp(t).Chat)

	d.Submit("   ")
	d.PressEnter()

	assert.Len(t, v.messages, 1)
	assert.False(t, v.pending)
}

func TestChatView_PendingShowsTypingAndBlocksEnter(t *testing.T) {
	chat := &blockingChat{ChatService: testApp(t).Chat, release: make(chan struct{})}
	t.Cleanup(func() { close(chat.release) })
	d, v := chatDriver(t, chat)

	d.Submit("azure")
	assert.True(t, v.pending)
	assert.Contains(t, d.View(), "is typing")

	d.Submit("gcp")
	assert.True(t, v.pending)
	assert.Equal(t, "gcp", v.input.Value(), "input is kept while a reply is pending")
	assert.Len(t, v.messages, 2)

	d.Send(replyMsg{msg: &domain.Message{Sender: domain.SenderBot, Text: "late reply"}})
	assert.False(t, v.pending)
	assert.NotContains(t, d.View(), "is typing")
	assert.Equal(t, "late reply", v.messages[2].Text)
}

func TestChatView_TopicsCommand(t *testing.T) {
	d, v := chatDriver(t, testApp(t).Chat)

	d.Submit("/topics")

	assert.Len(t, v.messages, 1, "slash commands are not sent to the assistant")
	assert.Contains(t, d.View(), "TOPICS")
	assert.Contains(t, d.View(), "aws.saa")
}

func TestChatView_ClearCommand(t *testing.T) {
	d, v := chatDriver(t, testApp(t).Chat)
	first := v.messages[0].ID

	d.Submit("pricing")
	require.Len(t, v.messages, 3)

	d.Submit("/clear")
	require.Len(t, v.messages, 1)
	assert.Equal(t, service.WelcomeMessage, v.messages[0].Text)
	assert.NotEqual(t, first, v.messages[0].ID)
}

func TestChatView_QuitKeys(t *testing.T) {
	tests := []struct {
		name  string
		press func(d *teatest.Driver)
	}{
		{"esc", func(d *teatest.Driver) { d.PressEsc() }},
		{"ctrl+c", func(d *teatest.Driver) { d.PressCtrlC() }},
		{"slash quit", func(d *teatest.Driver) { d.Submit("/quit") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, v := chatDriver(t, testApp(t).Chat)
			tt.press(d)
			assert.True(t, d.Quitting)
			assert.True(t, v.quitting)
			assert.Empty(t, d.View())
		})
	}
}

func TestChatView_StartErrorShown(t *testing.T) {
	d, v := chatDriver(t, failingStartChat{ChatService: testApp(t).Chat})

	assert.Empty(t, v.messages)
	assert.Contains(t, d.View(), "store unavailable")
}

func TestChatView_ReplyErrorShownAsNotice(t *testing.T) {
	d, v := chatDriver(t, testApp(t).Chat)
	v.pending = true

	d.Send(replyMsg{err: errors.New("disk full")})

	assert.False(t, v.pending)
	assert.Contains(t, d.View(), "disk full")
}

func TestChatView_WindowResize(t *testing.T) {
	d, v := chatDriver(t, testApp(t).Chat)

	d.Send(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Equal(t, 60, v.width)
	assert.Equal(t, 52, v.input.Width)

	d.Send(tea.WindowSizeMsg{Width: 5, Height: 20})
	assert.Equal(t, 10, v.input.Width)
}
