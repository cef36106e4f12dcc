// Package protocol parses the line-based interval commands and encodes the
// replies sent back to clients.
package protocol

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/nikmy/intervald/pkg/errors"
)

type Verb string

const (
	VerbAdd  Verb = "ADD"
	VerbDel  Verb = "DEL"
	VerbFind Verb = "FIND"
)

// MaxInt bounds every numeric argument.
const MaxInt = 1<<32 - 1

var labelPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Command is a validated request. End is meaningful for ADD, DEL and a
// ranged FIND, Label for ADD and a labeled DEL.
type Command struct {
	Verb     Verb
	Begin    uint64
	End      uint64
	Label    string
	HasEnd   bool
	HasLabel bool
}

type argRule struct {
	minArgs, maxArgs int
	invalid          Reply
}

var argRules = map[Verb]argRule{
	VerbAdd:  {minArgs: 3, maxArgs: 3, invalid: ReplyInvalidAdd},
	VerbDel:  {minArgs: 2, maxArgs: 3, invalid: ReplyInvalidDel},
	VerbFind: {minArgs: 1, maxArgs: 2, invalid: ReplyInvalidFind},
}

// Parse validates line. When ok is false the command must not be executed
// and reply, if not empty, is sent to the client instead; a blank line
// yields no reply at all.
func Parse(line string) (cmd Command, reply Reply, ok bool) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Command{}, "", false
	}

	verb := Verb(tokens[0])
	rule, known := argRules[verb]
	if !known {
		return Command{}, ReplyInvalidCommand, false
	}

	args := tokens[1:]
	if len(args) < rule.minArgs || len(args) > rule.maxArgs {
		return Command{}, rule.invalid, false
	}

	cmd.Verb = verb

	cmd.Begin, reply, ok = parseInt(args[0], "first")
	if !ok {
		return Command{}, reply, false
	}

	if len(args) > 1 {
		cmd.End, reply, ok = parseInt(args[1], "second")
		if !ok {
			return Command{}, reply, false
		}
		cmd.HasEnd = true
	}

	if len(args) > 2 {
		if !labelPattern.MatchString(args[2]) {
			return Command{}, ReplyBadLabel, false
		}
		cmd.Label = args[2]
		cmd.HasLabel = true
	}

	if verb == VerbAdd && cmd.Begin >= cmd.End {
		return Command{}, ReplyInvalidAdd, false
	}

	return cmd, "", true
}

func parseInt(raw, place string) (uint64, Reply, bool) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, invalidInteger(raw), false
		}
		return 0, Reply(fmt.Sprintf("ERROR %s arg must be an integer", place)), false
	}

	if v < 0 || v > MaxInt {
		return 0, invalidInteger(raw), false
	}
	return uint64(v), "", true
}

func invalidInteger(raw string) Reply {
	return Reply(fmt.Sprintf(`ERROR invalid integer "%s"`, raw))
}
