// Package viewer shells out to the external applications the review
// loop collaborates with: the note viewer and the optional post-review
// tool.
package viewer

import (
	"os"
	"os/exec"

	"revu/internal/logs"
)

// Viewer opens notes in an external application. The command is a
// template from config; a "{title}" argument is replaced with the note
// title, otherwise the title is appended.
type Viewer struct {
	cmd []string
}

func New(cmd []string) *Viewer {
	return &Viewer{cmd: cmd}
}

// Open hands the title to the external viewer and returns immediately.
// Failures are logged and otherwise ignored.
func (v *Viewer) Open(title string) {
	if len(v.cmd) == 0 {
		return
	}
	args := make([]string, 0, len(v.cmd))
	substituted := false
	for _, a := range v.cmd[1:] {
		if a == "{title}" {
			a = title
			substituted = true
		}
		args = append(args, a)
	}
	if !substituted {
		args = append(args, title)
	}

	c := exec.Command(v.cmd[0], args...)
	if err := c.Start(); err != nil {
		logs.Logger.Printf("Warning: viewer failed to start: %v", err)
		return
	}
	go c.Wait() // reap; nothing waits on the result
}

// RunTool runs a companion tool to completion, wiring through the
// terminal. Failure is reported to the caller, never fatal.
func RunTool(path string, args []string) error {
	c := exec.Command(path, args...)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
