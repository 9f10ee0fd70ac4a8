package desktop

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The desktop-entry format has no field for "wait N seconds before
// launching", so the delay is encoded into the command itself as
// sh -c 'sleep N && CMD'. WrapDelay and UnwrapDelay form a reversible
// pair; delayWrapperRe is the single contract both sides share.
var delayWrapperRe = regexp.MustCompile(`sh -c ['"]sleep (\d+) && (.+)['"]`)

// WrapDelay encodes a startup delay into an Exec value. Single quotes in
// the command are escaped for the surrounding shell quoting. A delay of
// zero or less returns the command unchanged.
func WrapDelay(command string, delay int) string {
	if delay <= 0 {
		return command
	}
	escaped := strings.ReplaceAll(command, "'", `'\''`)
	return fmt.Sprintf("sh -c 'sleep %d && %s'", delay, escaped)
}

// UnwrapDelay decodes a wrapped Exec value back into the inner command and
// its delay. ok is false when the value carries no wrapper, in which case
// the command is returned as-is with a zero delay.
func UnwrapDelay(exec string) (command string, delay int, ok bool) {
	if !strings.Contains(exec, "sh -c") || !strings.Contains(exec, "sleep") {
		return exec, 0, false
	}
	m := delayWrapperRe.FindStringSubmatch(exec)
	if m == nil {
		return exec, 0, false
	}
	delay, err := strconv.Atoi(m[1])
	if err != nil {
		return exec, 0, false
	}
	command = strings.ReplaceAll(m[2], `'\''`, "'")
	return command, delay, true
}
