package cmd

import (
	"fmt"
	"time"

	"github.com/kesh-dev/correlate/internal/correlate"
	"github.com/kesh-dev/correlate/internal/tui"
	"github.com/spf13/cobra"
)

var demoWatch bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Play a canned message feed through a correlator",
	Long: `demo builds a session context template and a pattern trie in
memory, pushes a scripted sequence of messages and timer ticks through a
real Correlator, and prints the actions it emits as contexts close.

No file is read and no configuration is loaded from disk — this is an
instrumented example, not a config-driven front end.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(demoWatch)
	},
}

func init() {
	demoCmd.Flags().BoolVar(&demoWatch, "watch", false, "show a live TUI dashboard instead of printing to stdout")
	rootCmd.AddCommand(demoCmd)
}

// buildDemoTrie identifies two kinds of incoming lines: a session login
// and a session logout, each carrying a numeric user id.
func buildDemoTrie() (*correlate.PatternTrie, error) {
	trie := correlate.NewPatternTrie()

	login := correlate.NewPattern("login",
		correlate.LiteralSegment("login user-"),
		correlate.ParserSegment(correlate.NewIntParser("user")),
	)
	logout := correlate.NewPattern("logout",
		correlate.LiteralSegment("logout user-"),
		correlate.ParserSegment(correlate.NewIntParser("user")),
	)

	for _, p := range []*correlate.Pattern{login, logout} {
		if _, err := trie.Insert(p); err != nil {
			return nil, fmt.Errorf("demo: building trie: %w", err)
		}
	}
	return trie, nil
}

func buildDemoTemplates() ([]correlate.ContextTemplate, error) {
	sessionConditions, err := correlate.NewConditionsBuilder(5000).
		RenewTimeout(2000).
		Patterns("login", "logout").
		FirstOpens(true).
		LastCloses(true).
		Build()
	if err != nil {
		return nil, fmt.Errorf("demo: building conditions: %w", err)
	}

	return []correlate.ContextTemplate{
		{
			Name:       "session",
			Conditions: sessionConditions,
			Patterns:   []string{"login", "logout"},
			Actions:    []correlate.ActionSpec{correlate.NewMessageActionSpec()},
			KeyFields:  []string{"user"},
		},
	}, nil
}

// demoScript is the scripted sequence of events played through the
// correlator, one entry per step.
type demoStep struct {
	line  string // empty means "deliver a timer tick instead"
	tick  uint32
	pause time.Duration
}

var demoScript = []demoStep{
	{line: "login user-42", pause: 200 * time.Millisecond},
	{tick: 500, pause: 200 * time.Millisecond},
	{line: "logout user-42", pause: 200 * time.Millisecond},
	{line: "login user-7", pause: 200 * time.Millisecond},
	{tick: 2500, pause: 200 * time.Millisecond}, // exceeds the renew timeout with no logout
}

func runDemo(watch bool) error {
	trie, err := buildDemoTrie()
	if err != nil {
		return err
	}
	templates, err := buildDemoTemplates()
	if err != nil {
		return err
	}

	opts := []correlate.Option{correlate.WithTickInterval(time.Hour)} // drive timing by hand

	var feed *tui.Feed
	if watch {
		feed = tui.NewFeed()
		opts = append(opts, correlate.WithSink(feed.ActionSink), correlate.WithStatsSink(feed.StatsSink))
	} else {
		opts = append(opts, correlate.WithSink(printEmittedMessage))
	}

	correlator := correlate.NewCorrelator(templates, trie, opts...)

	runScript := func() {
		for _, step := range demoScript {
			if step.line != "" {
				fmt.Printf("📨 %s\n", step.line)
				correlator.PushMessage(correlate.NewMessageBuilder(step.line).Name("session").Build())
			} else {
				fmt.Printf("⏱️  +%dms\n", step.tick)
				correlator.PushTimerEvent(correlate.TimerEvent{ElapsedMS: step.tick})
			}
			time.Sleep(step.pause)
		}
		time.Sleep(200 * time.Millisecond)
		correlator.Stop()
	}

	if watch {
		go runScript()
		return tui.Run(feed)
	}

	runScript()
	return nil
}

func printEmittedMessage(msg *correlate.Message) {
	name, ok := msg.Name()
	if !ok {
		name = msg.UUID()
	}
	fmt.Printf("✅ context closed -> %s %v\n", name, msg.Values())
}
