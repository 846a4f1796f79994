package docs_test

import (
	"bufio"
	"flag"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/bankroll/cmd"
	"github.com/etnz/bankroll/docs"
	"github.com/google/subcommands"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every .md file is listed.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range listed {
		if _, err := docs.GetTopic(topic); err != nil {
			t.Errorf("failed to get topic %q: %v", topic, err)
		}
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, f := range files {
		base := strings.TrimSuffix(filepath.Base(f), ".md")
		if base != "readme" && !slices.Contains(listed, base) {
			t.Errorf("topic %q is not listed in readme.md", base)
		}
	}
}

func TestGetAllTopics(t *testing.T) {
	topics, err := docs.GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"exchange", "ledger", "statistics", "storage"}
	if !slices.Equal(topics, want) {
		t.Errorf("GetAllTopics() = %q, want %q", topics, want)
	}

	all, err := docs.GetTopic("*")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(all, "# Storage") || strings.Contains(all, "# bets user manual") {
		t.Errorf("GetTopic(*) should contain every topic but the readme")
	}

	if _, err := docs.GetTopic("nope"); err == nil {
		t.Errorf("GetTopic(nope) should fail")
	}
}

// TestExamples checks that every command shown in the manual exists and
// accepts its flags.
func TestExamples(t *testing.T) {
	commands := map[string]subcommands.Command{}
	commander := subcommands.NewCommander(flag.NewFlagSet("bets", flag.ContinueOnError), "bets")
	cmd.Register(commander)
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		commands[c.Name()] = c
	})

	topics, err := docs.GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range topics {
		content, err := docs.GetTopic(topic)
		if err != nil {
			t.Fatal(err)
		}
		for _, line := range bashLines([]byte(content)) {
			t.Run(topic+"/"+line, func(t *testing.T) {
				args := splitArgs(strings.TrimPrefix(line, "$ "))
				if len(args) == 0 || args[0] != "bets" {
					t.Fatalf("example %q does not run bets", line)
				}
				args = skipGlobalFlags(args[1:])
				if len(args) == 0 {
					t.Fatalf("example %q has no command", line)
				}
				c, ok := commands[args[0]]
				if !ok {
					t.Fatalf("example %q uses unknown command %q", line, args[0])
				}
				f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
				f.SetOutput(io.Discard)
				c.SetFlags(f)
				if err := f.Parse(args[1:]); err != nil {
					t.Errorf("example %q: %v", line, err)
				}
			})
		}
	}
}

// bashLines returns the command lines of the bash code blocks.
func bashLines(src []byte) []string {
	var lines []string
	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		block, ok := n.(*ast.FencedCodeBlock)
		if !ok || !entering || string(block.Language(src)) != "bash" {
			return ast.WalkContinue, nil
		}
		for i := 0; i < block.Lines().Len(); i++ {
			seg := block.Lines().At(i)
			line := strings.TrimSpace(string(seg.Value(src)))
			if strings.HasPrefix(line, "$ ") {
				lines = append(lines, line)
			}
		}
		return ast.WalkSkipChildren, nil
	})
	return lines
}

// skipGlobalFlags drops the flags placed before the command name.
func skipGlobalFlags(args []string) []string {
	for len(args) > 0 && strings.HasPrefix(args[0], "-") {
		switch strings.TrimLeft(args[0], "-") {
		case "config", "store", "path", "currency":
			args = args[1:]
		}
		if len(args) > 0 {
			args = args[1:]
		}
	}
	return args
}

// splitArgs splits a command line on spaces, honouring single quotes.
func splitArgs(line string) []string {
	var (
		args    []string
		current strings.Builder
		quoted  bool
		started bool
	)
	for _, r := range line {
		switch {
		case r == '\'':
			quoted = !quoted
			started = true
		case r == ' ' && !quoted:
			if started {
				args = append(args, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}
	if started {
		args = append(args, current.String())
	}
	return args
}
