package command

import "regexp"

// Grammar: target(:property)?(operator)?(operand)?
// The first match in the text wins; everything around it is ignored.
var commandRegexp = regexp.MustCompile(`(?P<target>[A-Za-z0-9_-]+)(:(?P<prop>[A-Za-z0-9_-]+))?(?P<operator>\+\+|--|\+=|-=)?(?P<operand>[0-9])?`)

// Command is a props command extracted from free-form message text.
// An empty field means the corresponding part was absent.
type Command struct {
	Target   string
	Property string
	Operator string // one of "++", "--", "+=", "-="
	Operand  string // single decimal digit, only meaningful with "+=" / "-="
}

// HasOperator reports whether the command mutates the ledger.
// Without an operator the command is a read-only query.
func (c Command) HasOperator() bool {
	return c.Operator != ""
}

// Parse extracts the first props command from text. The second return
// value is false when nothing in the text matches the grammar.
func Parse(text string) (Command, bool) {
	match := commandRegexp.FindStringSubmatch(text)
	if match == nil {
		return Command{}, false
	}

	var cmd Command
	for i, name := range commandRegexp.SubexpNames() {
		switch name {
		case "target":
			cmd.Target = match[i]
		case "prop":
			cmd.Property = match[i]
		case "operator":
			cmd.Operator = match[i]
		case "operand":
			cmd.Operand = match[i]
		}
	}
	return cmd, true
}
