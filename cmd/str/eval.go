package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/strkit/str"
)

// session holds two named string slots so two-instance operations
// (swap, take) can be exercised from the command line.
type session struct {
	slots map[string]*str.Str
	cur   string
}

func newSession() *session {
	return &session{
		slots: map[string]*str.Str{
			"a": {},
			"b": {},
		},
		cur: "a",
	}
}

func (s *session) active() *str.Str { return s.slots[s.cur] }

func (s *session) other() *str.Str {
	if s.cur == "a" {
		return s.slots["b"]
	}
	return s.slots["a"]
}

// eval runs one command against the session and returns its output.
func (s *session) eval(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	cmd, args := fields[0], fields[1:]
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), cmd))

	switch cmd {
	case "use":
		if len(args) != 1 || (args[0] != "a" && args[0] != "b") {
			return "", fmt.Errorf("use a|b")
		}
		s.cur = args[0]
		return "slot " + s.cur, nil

	case "local":
		n, err := intArg(args, 0)
		if err != nil {
			return "", err
		}
		s.slots[s.cur] = str.NewLocal(n)
		return fmt.Sprintf("slot %s: %d-byte local buffer", s.cur, n), nil

	case "set":
		s.active().SetString(rest)
		return s.describe(), nil

	case "append":
		s.active().AppendString(rest)
		return s.describe(), nil

	case "setf":
		if len(args) < 1 {
			return "", fmt.Errorf("setf <format> [args...]")
		}
		fargs := make([]any, len(args)-1)
		for i, a := range args[1:] {
			fargs[i] = parseArg(a)
		}
		if !s.active().Setfv(args[0], fargs) {
			return "", fmt.Errorf("format failed")
		}
		return s.describe(), nil

	case "ref":
		if rest == "" {
			return "", fmt.Errorf("ref <text>")
		}
		s.active().SetRef([]byte(rest))
		return s.describe(), nil

	case "reserve":
		n, err := intArg(args, 0)
		if err != nil {
			return "", err
		}
		s.active().Reserve(n)
		return s.describe(), nil

	case "shrink":
		s.active().ShrinkToFit()
		return s.describe(), nil

	case "truncate":
		n, err := intArg(args, 0)
		if err != nil {
			return "", err
		}
		s.active().Truncate(n)
		return s.describe(), nil

	case "resize":
		n, err := intArg(args, 0)
		if err != nil {
			return "", err
		}
		fill := byte(' ')
		if len(args) > 1 && len(args[1]) > 0 {
			fill = args[1][0]
		}
		s.active().Resize(n, fill)
		return s.describe(), nil

	case "clear":
		s.active().Clear()
		return s.describe(), nil

	case "wipe":
		s.active().ClearNoFree()
		return s.describe(), nil

	case "trim":
		s.active().Trim()
		return s.describe(), nil

	case "upper":
		s.active().ToUpper()
		return s.describe(), nil

	case "lower":
		s.active().ToLower()
		return s.describe(), nil

	case "push":
		if len(args) != 1 || len(args[0]) != 1 {
			return "", fmt.Errorf("push <char>")
		}
		s.active().PushBack(args[0][0])
		return s.describe(), nil

	case "pop":
		s.active().PopBack()
		return s.describe(), nil

	case "find":
		if rest == "" {
			return "", fmt.Errorf("find <substring>")
		}
		return strconv.Itoa(s.active().Index(rest)), nil

	case "swap":
		str.Swap(s.slots["a"], s.slots["b"])
		return s.describe(), nil

	case "take":
		s.active().Take(s.other())
		return s.describe(), nil

	case "clone":
		s.other().Set(s.active().Bytes())
		return "copied to the other slot", nil

	case "print":
		return strconv.Quote(s.active().String()), nil

	case "state":
		return s.describe(), nil

	case "help":
		return helpText, nil

	default:
		return "", fmt.Errorf("unknown command %q (try help)", cmd)
	}
}

// describe renders the active slot's content and storage state.
func (s *session) describe() string {
	a := s.active()
	return fmt.Sprintf("%s = %q  [%s len=%d cap=%d]",
		s.cur, a.String(), storageMode(a), a.Len(), a.Cap())
}

func storageMode(s *str.Str) string {
	switch {
	case s.UsingLocalBuffer():
		return "local"
	case s.OwnsBuffer():
		return "heap"
	case s.Len() > 0:
		return "ref"
	default:
		return "unbound"
	}
}

func intArg(args []string, i int) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing numeric argument")
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("bad number %q", args[i])
	}
	return n, nil
}

// parseArg guesses the value type for format arguments.
func parseArg(a string) any {
	if n, err := strconv.Atoi(a); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(a, 64); err == nil {
		return f
	}
	return a
}

const helpText = `commands:
  use a|b           switch the active slot
  local <n>         rebuild the slot with an n-byte local buffer
  set <text>        replace content
  append <text>     append content
  setf <fmt> [...]  formatted set (space-separated args)
  ref <text>        bind as a non-owning reference
  reserve <n>       grow capacity
  shrink            shrink capacity to fit
  truncate <n>      cut content to n chars
  resize <n> [c]    resize, padding with c
  clear             empty and release storage
  wipe              empty, keep storage
  trim|upper|lower  in-place edits
  push <c> / pop    append or drop one char
  find <sub>        first index of sub, -1 if absent
  swap              exchange slots a and b
  take              move the other slot into this one
  clone             copy this slot into the other
  print / state     show content / storage state`
