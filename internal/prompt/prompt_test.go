package prompt

import (
	"bytes"
	"strings"
	"testing"
)

func TestYesNo(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "upper no", input: "N\n", defaultYes: true, want: false},
		{name: "empty takes default yes", input: "\n", defaultYes: true, want: true},
		{name: "empty takes default no", input: "\n", defaultYes: false, want: false},
		{name: "retries until valid", input: "maybe\nyes\ny\n", want: true},
		{name: "eof takes default", input: "", defaultYes: true, want: true},
		{name: "answer without newline", input: "n", defaultYes: true, want: false},
		{name: "garbage then eof", input: "what", defaultYes: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(strings.NewReader(tt.input), &bytes.Buffer{})
			got, err := p.YesNo("Continue? ", tt.defaultYes)
			if err != nil {
				t.Fatalf("YesNo error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("YesNo = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestYesNoEcho(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("x\ny\n"), &out, WithEcho(true))
	if _, err := p.YesNo("Overwrite? (y/N)", false); err != nil {
		t.Fatalf("YesNo error: %v", err)
	}
	if strings.Count(out.String(), "Overwrite? (y/N)") != 2 {
		t.Fatalf("expected question twice, got %q", out.String())
	}

	var quiet bytes.Buffer
	p = New(strings.NewReader("y\n"), &quiet)
	if _, err := p.YesNo("Overwrite?", false); err != nil {
		t.Fatalf("YesNo error: %v", err)
	}
	if quiet.Len() != 0 {
		t.Fatalf("non-terminal input should not echo, got %q", quiet.String())
	}
}

func TestAssumeDefaults(t *testing.T) {
	p := New(strings.NewReader("n\n"), &bytes.Buffer{}, WithAssumeDefaults(true))
	got, err := p.YesNo("Create?", true)
	if err != nil || !got {
		t.Fatalf("YesNo = %v, %v; want true", got, err)
	}
}

func TestIsTerminalNonFile(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Fatal("buffer reported as terminal")
	}
}
