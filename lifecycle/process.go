package lifecycle

import (
	"os"
	"os/exec"
	"strings"

	"github.com/dragonmc/lazygate/config"
)

// DefaultSpawn starts cfg.Server.StartCommand in cfg.Server.WorkingDir,
// inheriting stdio so server logs land in the proxy's own output, and
// reports the exit code on a channel once the process dies.
//
// The start command is split the same way lazymc's original shlex-based
// splitter does it: whitespace-separated words, with single/double quotes
// grouping a word that contains spaces. No shell metacharacters (pipes,
// redirects, globs) are interpreted -- this is word splitting, not a
// shell invocation. No pack dependency offers a shlex-equivalent splitter,
// so this one function is implemented directly against the standard
// library.
func DefaultSpawn(cfg config.Configuration) (int, <-chan int, error) {
	words, err := splitWords(cfg.Server.StartCommand)
	if err != nil {
		return 0, nil, err
	}
	if len(words) == 0 {
		return 0, nil, errNoStartCommand
	}

	cmd := exec.Command(words[0], words[1:]...)
	cmd.Dir = cfg.Server.WorkingDir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return 0, nil, err
	}

	exitCh := make(chan int, 1)
	go func() {
		err := cmd.Wait()
		exitCh <- exitCodeOf(err)
		close(exitCh)
	}()

	registerProcess(cmd.Process.Pid, cmd.Process)
	return cmd.Process.Pid, exitCh, nil
}

func exitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return -1
}

// splitWords performs shell-like word splitting with single and double
// quote support, equivalent in scope to the shlex crate lazymc's original
// implementation used to parse start_command.
func splitWords(s string) ([]string, error) {
	var words []string
	var cur strings.Builder
	inWord := false
	var quote byte

	flush := func() {
		if inWord {
			words = append(words, cur.String())
			cur.Reset()
			inWord = false
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				cur.WriteByte(c)
			}
		case c == '\'' || c == '"':
			quote = c
			inWord = true
		case c == ' ' || c == '\t':
			flush()
		default:
			inWord = true
			cur.WriteByte(c)
		}
	}
	if quote != 0 {
		return nil, errUnterminatedQuote
	}
	flush()
	return words, nil
}
