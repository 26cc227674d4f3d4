package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/askdojo/askdojo/internal/config"
	"github.com/askdojo/askdojo/internal/repository"
	"github.com/askdojo/askdojo/internal/responder"
	"github.com/askdojo/askdojo/internal/service"
	"github.com/askdojo/askdojo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires an App with a zero-delay engine and an in-memory store.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	engine := responder.New(responder.WithDelay(responder.NoDelay()))

	return &App{
		Engine: engine,
		Chat: service.NewChatService(
			repository.NewSQLiteChatSessionRepo(database),
			repository.NewSQLiteMessageRepo(database),
			testutil.NewTestUoW(database),
			engine,
		),
	}
}

// executeCmd runs the root command with args and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- ask ---

func TestAskCmd_PrintsAnswer(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "", "ask", "hello")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello! Welcome to Tutorials Dojo.")
	assert.NotContains(t, out, "[greeting]")
}

func TestAskCmd_JoinsArgs(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "", "ask", "--show-topic", "tell", "me", "about", "the", "SAA", "exam")
	require.NoError(t, err)
	assert.Contains(t, out, "SAA-C03")
	assert.Contains(t, out, "[aws.saa]")
}

func TestAskCmd_Fallback(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "", "ask", "--show-topic", "what's the weather today")
	require.NoError(t, err)
	assert.Contains(t, out, "[fallback]")
	assert.Contains(t, out, "I'm here to help you with information about Tutorials Dojo's")
}

func TestAskCmd_RejectsBlank(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "", "ask", "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be empty")

	_, err = executeCmd(t, testApp(t), "", "ask")
	require.Error(t, err)
}

func TestAskCmd_NotConfigured(t *testing.T) {
	_, err := executeCmd(t, &App{}, "", "ask", "hi")
	assert.ErrorIs(t, err, errNotConfigured)
}

// --- chat (piped) ---

func TestChatCmd_PipedConversation(t *testing.T) {
	app := testApp(t)
	out, err := executeCmd(t, app, "hello\n\n   \naws pricing\n", "chat")
	require.NoError(t, err)

	assert.Contains(t, out, "I'm Ask@Dojo, your AI assistant for Tutorials Dojo.")
	assert.Contains(t, out, "Hello! Welcome to Tutorials Dojo.")
	assert.Contains(t, out, "comprehensive range of AWS")

	transcript, err := app.Chat.Transcript(t.Context())
	require.NoError(t, err)
	assert.Len(t, transcript, 5, "welcome plus two exchanges; blank lines are skipped")
}

func TestChatCmd_RootRunsChat(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "contact\n")
	require.NoError(t, err)
	assert.Contains(t, out, "support@tutorialsdojo.com")
}

func TestChatCmd_SlashCommands(t *testing.T) {
	app := testApp(t)
	out, err := executeCmd(t, app, "azure\n/topics\n/clear\n/quit\nhello\n", "chat")
	require.NoError(t, err)

	assert.Contains(t, out, "TOPICS")
	assert.NotContains(t, out, "Hello! Welcome", "input after /quit is not read")

	transcript, err := app.Chat.Transcript(t.Context())
	require.NoError(t, err)
	require.Len(t, transcript, 1)
	assert.Equal(t, service.WelcomeMessage, transcript[0].Text)
}

func TestChatCmd_NotConfigured(t *testing.T) {
	_, err := executeCmd(t, &App{}, "hi\n", "chat")
	assert.ErrorIs(t, err, errNotConfigured)
}

// --- topics / catalog ---

func TestTopicsCmd_ListsPriorityOrder(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "", "topics")
	require.NoError(t, err)

	aws := strings.Index(out, "aws")
	pricing := strings.Index(out, "pricing")
	greeting := strings.Index(out, "greeting")
	require.True(t, aws >= 0 && pricing >= 0 && greeting >= 0)
	assert.Less(t, aws, pricing)
	assert.Less(t, pricing, greeting)
	assert.Contains(t, out, "aws.saa")
	assert.Contains(t, out, "fallback")
}

func TestCatalogCmd_AllProviders(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "", "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "SAA-C03")
	assert.Contains(t, out, "MICROSOFT AZURE")
	assert.Contains(t, out, "KUBERNETES")
	assert.NotContains(t, out, "FREE COURSES")
}

func TestCatalogCmd_OneProviderWithOffers(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "", "catalog", "AZURE", "--offers")
	require.NoError(t, err)
	assert.Contains(t, out, "AZ-104")
	assert.NotContains(t, out, "SAA-C03")
	assert.Contains(t, out, "FREE COURSES")
	assert.Contains(t, out, "support@tutorialsdojo.com")
}

func TestCatalogCmd_UnknownProvider(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "", "catalog", "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown provider "oracle"`)
}

func TestCatalogCmd_WorksWithoutEngine(t *testing.T) {
	out, err := executeCmd(t, &App{}, "", "catalog", "kubernetes")
	require.NoError(t, err)
	assert.Contains(t, out, "Kubernetes")
}

// --- browse ---

func TestBrowseCmd_TopicFlag(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "", "browse", "--topic", "aws.mla")
	require.NoError(t, err)
	assert.Contains(t, out, "MLA-C01")
	assert.Contains(t, out, "[aws.mla]")
}

func TestBrowseCmd_UnknownTopic(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "", "browse", "--topic", "weather")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown topic "weather"`)
}

func TestBrowseCmd_NeedsTerminalWithoutTopic(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "", "browse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--topic")
}

func TestTopicLabel(t *testing.T) {
	app := testApp(t)
	kb := app.catalog()
	assert.Equal(t, "Pricing", topicLabel(kb, responder.TopicPricing))
	assert.Contains(t, topicLabel(kb, responder.TopicAWSSolutionsArchitect), "Solutions Architect")
	assert.Equal(t, "nope", topicLabel(kb, "nope"))
	for _, key := range responder.Topics() {
		assert.NotEmpty(t, topicLabel(kb, key))
	}
}

// --- root ---

func TestRootCmd_ConfigureReceivesFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	var got config.Config
	app := testApp(t)
	app.Configure = func(cfg config.Config) error {
		got = cfg
		return nil
	}

	_, err := executeCmd(t, app, "", "topics", "--delay=false", "--log-replies")
	require.NoError(t, err)
	assert.False(t, got.DelayEnabled)
	assert.True(t, got.LogReplies)
	assert.Equal(t, 800, got.DelayMinMs)
}

func TestRootCmd_TerminalRoutesLogsToFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)

	var got config.Config
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	app.Configure = func(cfg config.Config) error {
		got = cfg
		return nil
	}

	_, err := executeCmd(t, app, "", "topics", "--log", "dev")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "askdojo.log"), got.LogFile)

	app.IsInteractive = nil
	_, err = executeCmd(t, app, "", "topics", "--log", "dev")
	require.NoError(t, err)
	assert.Empty(t, got.LogFile, "piped runs keep logging on stderr")
}

func TestRootCmd_ConfigureErrorStopsCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	app := testApp(t)
	app.Configure = func(config.Config) error { return errors.New("no store") }

	out, err := executeCmd(t, app, "", "ask", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no store")
	assert.NotContains(t, out, "Welcome")
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	app := testApp(t)
	app.Configure = func(config.Config) error { return nil }

	_, err := executeCmd(t, app, "", "topics", "--delay-min", "900", "--delay-max", "100")
	require.Error(t, err)
}
