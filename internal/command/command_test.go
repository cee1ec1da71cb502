package command

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		matched bool
		want    Command
	}{
		{
			name:    "bare increment",
			text:    "alice++",
			matched: true,
			want:    Command{Target: "alice", Operator: "++"},
		},
		{
			name:    "property with operand",
			text:    "alice:coffee+=3",
			matched: true,
			want:    Command{Target: "alice", Property: "coffee", Operator: "+=", Operand: "3"},
		},
		{
			name:    "bare decrement",
			text:    "bob--",
			matched: true,
			want:    Command{Target: "bob", Operator: "--"},
		},
		{
			name:    "query without operator",
			text:    "alice",
			matched: true,
			want:    Command{Target: "alice"},
		},
		{
			name:    "property query without operator",
			text:    "alice:coffee",
			matched: true,
			want:    Command{Target: "alice", Property: "coffee"},
		},
		{
			name:    "subtract with operand",
			text:    "carol-=9",
			matched: true,
			want:    Command{Target: "carol", Operator: "-=", Operand: "9"},
		},
		{
			name:    "first match wins",
			text:    "thanks alice++ and bob++ too",
			matched: true,
			want:    Command{Target: "thanks"},
		},
		{
			name:    "command embedded in sentence",
			text:    "alice:deploys++ nice work",
			matched: true,
			want:    Command{Target: "alice", Property: "deploys", Operator: "++"},
		},
		{
			name:    "identifier with dash and underscore",
			text:    "build-bot_2++",
			matched: true,
			want:    Command{Target: "build-bot_2", Operator: "++"},
		},
		{
			name:    "identifier chars inside noise",
			text:    "¯\\_(ツ)_/¯",
			matched: true,
			want:    Command{Target: "_"},
		},
		{
			name:    "empty text",
			text:    "",
			matched: false,
			want:    Command{},
		},
		{
			name:    "only punctuation",
			text:    "++ => ??",
			matched: false,
			want:    Command{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, matched := Parse(tt.text)
			if matched != tt.matched {
				t.Fatalf("Parse(%q) matched = %v, want %v", tt.text, matched, tt.matched)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestCommand_HasOperator(t *testing.T) {
	query, _ := Parse("alice:coffee")
	if query.HasOperator() {
		t.Error("query without operator should not report HasOperator")
	}

	update, _ := Parse("alice:coffee++")
	if !update.HasOperator() {
		t.Error("update with operator should report HasOperator")
	}
}
