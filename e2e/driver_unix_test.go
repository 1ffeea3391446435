//go:build e2e && unix

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"
)

var binPath = "dsaexplorer_e2e"

// Keys as a terminal sends them
const (
	KeyEnter  = "\r"
	KeyEsc    = "\x1b"
	KeyCtrlC  = "\x03"
	KeyCtrlK  = "\x0b"
	KeyCtrlR  = "\x12"
	KeyDown   = "j"
	KeyQuit   = "q"
	KeyF2     = "\x1bOQ"
	KeyPager  = "o"
	KeyHelp   = "?"
	KeyTheme  = "t"
	KeyFilter = "/"
	KeyClear  = "x"
)

const (
	maxCapture  = 1 << 20
	waitTimeout = 3 * time.Second
	pollEvery   = 25 * time.Millisecond
)

// CSI, OSC, charset and keypad sequences plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

func plain(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

// Terminal runs dsaexplorer in a pseudo-terminal and records everything it draws
type Terminal struct {
	t      *testing.T
	dir    string
	cmd    *exec.Cmd
	pty    *os.File
	exited chan error

	mu  sync.Mutex
	out bytes.Buffer
}

// NewTerminal prepares an isolated home directory with a fast playground config
func NewTerminal(t *testing.T) *Terminal {
	t.Helper()
	term := &Terminal{t: t, dir: t.TempDir()}

	cfg := fmt.Sprintf("[playground]\ndelay_ms = 50\n\n[log]\nfile = %q\n", filepath.Join(term.dir, "dsaexplorer.log"))
	require.NoError(t, os.WriteFile(term.ConfigPath(), []byte(cfg), 0644))

	t.Cleanup(term.Close)
	return term
}

// ConfigPath is the config file the app is started with
func (term *Terminal) ConfigPath() string {
	return filepath.Join(term.dir, "config.toml")
}

// Start launches the app and waits for the first frame
func (term *Terminal) Start(args ...string) {
	term.t.Helper()

	argv := append([]string{"--config", term.ConfigPath()}, args...)
	term.cmd = exec.Command(binPath, argv...)
	term.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+term.dir,
		"XDG_CONFIG_HOME="+filepath.Join(term.dir, ".config"),
		"XDG_CACHE_HOME="+filepath.Join(term.dir, ".cache"),
	)

	f, err := pty.StartWithSize(term.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	require.NoError(term.t, err, "failed to start app in a pty")
	term.pty = f

	go term.capture()

	term.exited = make(chan error, 1)
	go func() {
		term.exited <- term.cmd.Wait()
	}()

	term.Expect("DSA Explorer")
}

func (term *Terminal) capture() {
	buf := make([]byte, 8192)
	for {
		n, err := term.pty.Read(buf)
		if n > 0 {
			term.mu.Lock()
			if term.out.Len()+n > maxCapture {
				// Keep the newer half
				tail := append([]byte(nil), term.out.Bytes()[term.out.Len()/2:]...)
				term.out.Reset()
				term.out.Write(tail)
			}
			term.out.Write(buf[:n])
			term.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// Press writes raw key sequences to the app
func (term *Terminal) Press(keys ...string) {
	term.t.Helper()
	for _, k := range keys {
		_, err := io.WriteString(term.pty, k)
		require.NoError(term.t, err, "failed to send %q", k)
	}
}

// Type sends text one rune at a time, the way a user types it
func (term *Terminal) Type(text string) {
	term.t.Helper()
	for _, r := range text {
		term.Press(string(r))
	}
}

// Mark returns the current capture offset; Since(mark) only sees later output
func (term *Terminal) Mark() int {
	term.mu.Lock()
	defer term.mu.Unlock()
	return term.out.Len()
}

// Plain returns everything drawn so far without escape sequences
func (term *Terminal) Plain() string {
	return term.Since(0)
}

// Since returns the plain output drawn after mark
func (term *Terminal) Since(mark int) string {
	term.mu.Lock()
	defer term.mu.Unlock()
	b := term.out.Bytes()
	if mark > len(b) {
		mark = 0
	}
	return plain(string(b[mark:]))
}

// See waits until text shows up in the plain output
func (term *Terminal) See(text string) bool {
	return term.SeeSince(0, text)
}

// SeeSince waits until text shows up after mark
func (term *Terminal) SeeSince(mark int, text string) bool {
	deadline := time.Now().Add(waitTimeout)
	for {
		if strings.Contains(term.Since(mark), text) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(pollEvery)
	}
}

// Expect fails the test with the tail of the screen when text never appears
func (term *Terminal) Expect(text string) {
	term.t.Helper()
	if !term.See(text) {
		term.t.Fatalf("never saw %q\n--- tail ---\n%s", text, term.tail(4096))
	}
}

// ExpectSince is Expect limited to output drawn after mark
func (term *Terminal) ExpectSince(mark int, text string) {
	term.t.Helper()
	if !term.SeeSince(mark, text) {
		term.t.Fatalf("never saw %q after mark\n--- tail ---\n%s", text, term.tail(4096))
	}
}

func (term *Terminal) tail(n int) string {
	s := term.Plain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	return s
}

// WaitExit waits for the process to finish
func (term *Terminal) WaitExit(timeout time.Duration) error {
	select {
	case err := <-term.exited:
		term.cmd = nil
		return err
	case <-time.After(timeout):
		return errors.New("app did not exit")
	}
}

// Close hangs up the pty and kills the app if it is still running
func (term *Terminal) Close() {
	if term.pty != nil {
		_ = term.pty.Close()
		term.pty = nil
	}
	if term.cmd != nil && term.cmd.Process != nil {
		_ = term.cmd.Process.Kill()
		<-term.exited
		term.cmd = nil
	}
}
