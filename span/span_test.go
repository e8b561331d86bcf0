package span

import "testing"

func TestFindBalancedObject(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		from      int
		wantStart int
		wantEnd   int
		wantOK    bool
	}{
		{
			name:      "simple object",
			text:      `{"a": 1}`,
			wantStart: 0,
			wantEnd:   8,
			wantOK:    true,
		},
		{
			name:      "nested objects",
			text:      `{"a": {"b": {"c": 1}}}`,
			wantStart: 0,
			wantEnd:   22,
			wantOK:    true,
		},
		{
			name:      "brace inside double-quoted string",
			text:      `{"a": "}"}`,
			wantStart: 0,
			wantEnd:   10,
			wantOK:    true,
		},
		{
			name:      "brace inside single-quoted string",
			text:      `{'a': '{'}`,
			wantStart: 0,
			wantEnd:   10,
			wantOK:    true,
		},
		{
			name:      "escaped quote does not end string",
			text:      `{"a": "\"}"}`,
			wantStart: 0,
			wantEnd:   12,
			wantOK:    true,
		},
		{
			name:      "leading prose skipped",
			text:      `some prose {"a": 1} trailer`,
			wantStart: 11,
			wantEnd:   19,
			wantOK:    true,
		},
		{
			name:   "unterminated object",
			text:   `{"a": 1, "b": `,
			wantOK: false,
		},
		{
			name:   "no opening brace",
			text:   "plain text with no object",
			wantOK: false,
		},
		{
			name:   "from past end of text",
			text:   "{}",
			from:   10,
			wantOK: false,
		},
		{
			name:      "from inside text",
			text:      `{"a": 1} {"b": 2}`,
			from:      8,
			wantStart: 9,
			wantEnd:   17,
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := FindBalancedObject(tt.text, tt.from, 0)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("span = (%d,%d), want (%d,%d)", start, end, tt.wantStart, tt.wantEnd)
			}
			if tt.text[start] != '{' || tt.text[end-1] != '}' {
				t.Errorf("span does not bracket an object: %q", tt.text[start:end])
			}
		})
	}
}

func TestFindBalancedObjectWindowBound(t *testing.T) {
	// A deep open-brace run that never closes must fail closed within the
	// window instead of scanning the remainder of the input.
	long := "{"
	for i := 0; i < 100; i++ {
		long += `"key": 1, `
	}
	_, _, ok := FindBalancedObject(long, 0, 50)
	if ok {
		t.Error("expected no match within a 50-byte window")
	}

	// The same text with a close brace beyond the window still fails.
	_, _, ok = FindBalancedObject(long+"}", 0, 50)
	if ok {
		t.Error("expected window to bound the scan before the closing brace")
	}

	// With a generous window the closure is found.
	start, end, ok := FindBalancedObject(long+"}", 0, len(long)+10)
	if !ok || start != 0 || end != len(long)+1 {
		t.Errorf("span = (%d,%d,%v), want (0,%d,true)", start, end, ok, len(long)+1)
	}
}

func TestLineIndex(t *testing.T) {
	text := "first\nsecond\n\nfourth"
	ix := NewLineIndex(text)

	if got := ix.Lines(); got != 4 {
		t.Fatalf("Lines() = %d, want 4", got)
	}

	tests := []struct {
		line      int
		wantStart int
		wantEnd   int
		content   string
	}{
		{0, 0, 5, "first"},
		{1, 6, 12, "second"},
		{2, 13, 13, ""},
		{3, 14, 20, "fourth"},
	}
	for _, tt := range tests {
		if got := ix.Start(tt.line); got != tt.wantStart {
			t.Errorf("Start(%d) = %d, want %d", tt.line, got, tt.wantStart)
		}
		if got := ix.End(tt.line); got != tt.wantEnd {
			t.Errorf("End(%d) = %d, want %d", tt.line, got, tt.wantEnd)
		}
		if got := text[ix.Start(tt.line):ix.End(tt.line)]; got != tt.content {
			t.Errorf("line %d content = %q, want %q", tt.line, got, tt.content)
		}
	}

	// Clamping.
	if got := ix.Start(-1); got != 0 {
		t.Errorf("Start(-1) = %d, want 0", got)
	}
	if got := ix.Start(99); got != len(text) {
		t.Errorf("Start(99) = %d, want %d", got, len(text))
	}
}

func TestLineIndexEmpty(t *testing.T) {
	ix := NewLineIndex("")
	if got := ix.Lines(); got != 1 {
		t.Errorf("Lines() = %d, want 1", got)
	}
	if ix.Start(0) != 0 || ix.End(0) != 0 {
		t.Errorf("empty text line bounds = (%d,%d), want (0,0)", ix.Start(0), ix.End(0))
	}
}
