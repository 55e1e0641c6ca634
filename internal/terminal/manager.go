package terminal

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/creack/pty"
)

// Manager runs the user's $EDITOR in a PTY so a code element's linked
// source file can be edited in place. PTY output streams to the
// frontend terminal pane; the file watcher picks up saves and refreshes
// the element.
type Manager struct {
	mu      sync.Mutex
	session *session
	onData  func(data []byte)
	onExit  func()
	editor  string
	path    string // login shell PATH, resolved once
	cols    uint16 // last size the pane reported
	rows    uint16
}

// session is one live editor process attached to a PTY.
type session struct {
	ptmx *os.File
	cmd  *exec.Cmd
}

// New creates a terminal manager. $EDITOR picks the editor, defaulting
// to vi.
func New(onData func(data []byte), onExit func()) *Manager {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	return &Manager{
		onData: onData,
		onExit: onExit,
		editor: locateBinary(editor),
		path:   loginShellPath(),
		cols:   80,
		rows:   24,
	}
}

// locateBinary resolves an editor name to an absolute path. GUI apps on
// macOS inherit a minimal PATH, so common install prefixes are probed
// when LookPath comes up empty.
func locateBinary(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	if p, err := exec.LookPath(name); err == nil {
		return p
	}
	prefixes := []string{"/opt/homebrew/bin", "/usr/local/bin", "/run/current-system/sw/bin"}
	if home, err := os.UserHomeDir(); err == nil {
		prefixes = append(prefixes, filepath.Join(home, ".local/bin"), filepath.Join(home, ".nix-profile/bin"))
	}
	for _, prefix := range prefixes {
		candidate := filepath.Join(prefix, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return name
}

// loginShellPath asks the user's login shell for its PATH so editor
// child processes find installed tools.
func loginShellPath() string {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/zsh"
	}
	out, err := exec.Command(shell, "-lc", "echo $PATH").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// OpenFile starts the editor on filePath, replacing any running session.
func (m *Manager) OpenFile(filePath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.teardownLocked()

	cmd := exec.Command(m.editor, filePath)
	cmd.Env = m.sessionEnv()

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: m.cols, Rows: m.rows})
	if err != nil {
		return fmt.Errorf("start pty: %w", err)
	}
	s := &session{ptmx: ptmx, cmd: cmd}
	m.session = s

	go m.pump(s)
	return nil
}

func (m *Manager) sessionEnv() []string {
	env := os.Environ()
	if m.path != "" {
		found := false
		for i, e := range env {
			if strings.HasPrefix(e, "PATH=") {
				env[i] = "PATH=" + m.path
				found = true
				break
			}
		}
		if !found {
			env = append(env, "PATH="+m.path)
		}
	}
	return append(env, "TERM=xterm-256color", "COLORTERM=truecolor")
}

// pump copies PTY output to the frontend until the editor exits.
func (m *Manager) pump(s *session) {
	buf := make([]byte, 32768)
	for {
		n, err := s.ptmx.Read(buf)
		if n > 0 && m.onData != nil {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			m.onData(chunk)
		}
		if err != nil {
			break
		}
	}

	// A session torn down by Close or a replacing OpenFile already
	// detached; only a natural exit notifies the frontend.
	m.mu.Lock()
	mine := m.session == s
	if mine {
		m.session = nil
	}
	m.mu.Unlock()
	if mine && m.onExit != nil {
		m.onExit()
	}
}

// Write sends keystrokes from the frontend pane to the PTY.
func (m *Manager) Write(data string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return fmt.Errorf("no active terminal session")
	}
	_, err := io.WriteString(m.session.ptmx, data)
	return err
}

// Resize updates the PTY window size. The size sticks so the next
// session opens at the pane's current dimensions.
func (m *Manager) Resize(cols, rows uint16) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cols, m.rows = cols, rows
	if m.session == nil {
		return nil
	}
	return pty.Setsize(m.session.ptmx, &pty.Winsize{Cols: cols, Rows: rows})
}

// IsRunning reports whether an editor session is active.
func (m *Manager) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session != nil
}

// Close ends the current session, if any.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teardownLocked()
}

func (m *Manager) teardownLocked() {
	s := m.session
	if s == nil {
		return
	}
	m.session = nil
	s.ptmx.Close()
	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
		s.cmd.Wait()
	}
}
