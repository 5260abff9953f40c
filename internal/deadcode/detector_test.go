package deadcode

import (
	"testing"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		wantLines []int
	}{
		{
			name:      "code after return",
			source:    "function f() {\n  return 1;\n  cleanup();\n}\n",
			wantLines: []int{3},
		},
		{
			name:      "closing brace is fine",
			source:    "function f() {\n  return 1;\n}\n",
			wantLines: nil,
		},
		{
			name:      "case label after break is fine",
			source:    "switch (x) {\ncase 1:\n  break;\ncase 2:\n  break;\n}\n",
			wantLines: nil,
		},
		{
			name:      "comment lines are skipped",
			source:    "function f() {\n  return 1;\n  // explain\n  leftover();\n}\n",
			wantLines: []int{4},
		},
		{
			name:      "code after continue",
			source:    "for (;;) {\n  continue;\n  tick();\n}\n",
			wantLines: []int{3},
		},
		{
			name:      "blank lines are skipped",
			source:    "function f() {\n  return 1;\n\n  stale();\n}\n",
			wantLines: []int{4},
		},
	}

	d := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := d.Scan("x.js", tt.source)

			var lines []int
			for _, b := range blocks {
				lines = append(lines, b.Line)
				if b.Type != "unreachable_after_return" {
					t.Errorf("Type = %q", b.Type)
				}
			}

			if len(lines) != len(tt.wantLines) {
				t.Fatalf("flagged lines = %v, want %v", lines, tt.wantLines)
			}
			for i := range lines {
				if lines[i] != tt.wantLines[i] {
					t.Errorf("flagged lines = %v, want %v", lines, tt.wantLines)
				}
			}
		})
	}
}
