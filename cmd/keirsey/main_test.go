package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"keirsey-sorter/internal/config"
	"keirsey-sorter/internal/questionnaire"
	"keirsey-sorter/internal/terminal"
)

func runCmd(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	a := &app{
		cfg:    &config.Config{LogLevel: "warn", NoColor: "1"},
		logger: zap.NewNop(),
	}
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	cases := []struct {
		arg  string
		want string
	}{
		{"ENFP", "ENFP: Idealist"},
		{"xsfp", "XSFP: Artisan"},
		{"XXXX", "XXXX: all_tied"},
		{"XSTX", "XSTX: unclassified"},
	}
	for _, tc := range cases {
		out, err := runCmd(t, "", "classify", tc.arg)
		if err != nil {
			t.Fatalf("%s: expected no error, got %v", tc.arg, err)
		}
		if strings.TrimSpace(out) != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.arg, tc.want, out)
		}
	}
}

func TestClassifyCommand_InvalidCode(t *testing.T) {
	for _, arg := range []string{"ABCD", "ENF", "ENFPX"} {
		if _, err := runCmd(t, "", "classify", arg); !errors.Is(err, ErrInvalidCode) {
			t.Fatalf("%s: expected ErrInvalidCode, got %v", arg, err)
		}
	}
}

func TestScoreCommand(t *testing.T) {
	out, err := runCmd(t, "", "score", "--diagnostics", "ABBBBBB", "ABBBBBB")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	texts, err := questionnaire.DefaultCategories()
	if err != nil {
		t.Fatalf("load categories: %v", err)
	}
	for _, want := range []string{"ENFP", "Idealist", firstLine(texts.Descriptions["Idealist"]), "Tallies", "J/P"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestScoreCommand_RejectsBadAnswers(t *testing.T) {
	if _, err := runCmd(t, "", "score", "ABC"); err == nil {
		t.Fatalf("expected error for invalid answer letter")
	}
}

func TestInteractive_CompletesAndStops(t *testing.T) {
	input := strings.Repeat("A\n", 14) + "n\n"
	out, err := runCmd(t, input, "--no-clear")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, want := range []string{"Question 1 of 14", "Question 14 of 14", "A: 13 B: 0", "ESTJ", "Guardian", "A: 100.00%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Count(out, "Your temperament code") != 1 {
		t.Fatalf("expected a single run")
	}
}

func TestInteractive_RunsAgain(t *testing.T) {
	input := strings.Repeat("A\n", 14) + "y\n" + strings.Repeat("b\n", 14) + "n\n"
	out, err := runCmd(t, input, "--no-clear")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if strings.Count(out, "Your temperament code") != 2 {
		t.Fatalf("expected two runs:\n%s", out)
	}
	if !strings.Contains(out, "INFP") {
		t.Fatalf("expected second run to score INFP:\n%s", out)
	}
}

func TestInteractive_InputEndsEarly(t *testing.T) {
	_, err := runCmd(t, "A\nB\n", "--no-clear")
	if !errors.Is(err, terminal.ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
}

func TestQuestionsFlag_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	if err := os.WriteFile(path, []byte(`{"questions": []}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := runCmd(t, "", "score", "--questions", path, "A"); !errors.Is(err, questionnaire.ErrQuestionnaireEmpty) {
		t.Fatalf("expected ErrQuestionnaireEmpty, got %v", err)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
