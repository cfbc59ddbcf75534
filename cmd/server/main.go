// glyphsim-server serves the simulation sandbox over SSH: every client
// that connects gets an independent world on their own terminal. Build:
//
//	go build -o glyphsim-server ./cmd/server
//
// Usage:
//
//	./glyphsim-server [--config glyphsim.toml]
//
// Connect:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"glyphsim/internal/config"
	"glyphsim/internal/logging"
	"glyphsim/internal/sim"
	internalssh "glyphsim/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"go.uber.org/zap"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "glyphsim.toml", "Path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	signer, err := loadOrCreateHostKey(cfg.Server.HostKeyFile, log)
	if err != nil {
		return err
	}

	srv := &gossh.Server{
		Addr: cfg.Server.BindAddress,
		Handler: func(s gossh.Session) {
			handleSession(s, cfg, log)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication — the sandbox has nothing to protect.
		HostSigners: []gossh.Signer{signer},
	}

	log.Info("glyphsim SSH server listening", zap.String("addr", cfg.Server.BindAddress))
	return srv.ListenAndServe()
}

// allowedTerms is the terminfo allowlist for client-supplied TERM values.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"tmux":                  true,
	"tmux-256color":         true,
	"screen":                true,
	"screen-256color":       true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// handleSession runs one simulation for one SSH connection. It blocks for
// the duration of the connection so the session stays open.
func handleSession(s gossh.Session, cfg *config.Config, log *zap.Logger) {
	slog := log.With(zap.String("remote", s.RemoteAddr().String()))

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "glyphsim requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	term := "xterm-256color"
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") && allowedTerms[env[5:]] {
			term = env[5:]
			break
		}
	}

	// TERM must be set in the process environment before
	// NewTerminfoScreenFromTty reads it.
	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	slog.Info("session started", zap.String("term", term))
	sandbox, err := sim.New(screen, cfg.Sim, slog)
	if err != nil {
		slog.Error("simulation setup failed", zap.Error(err))
		return
	}
	if err := sandbox.Run(); err != nil {
		slog.Error("simulation ended with error", zap.Error(err))
		return
	}
	slog.Info("session ended")
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log *zap.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info("loaded host key", zap.String("path", path))
			return signer, nil
		}
	}

	log.Info("generating new ed25519 host key", zap.String("path", path))
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "glyphsim server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer, nil
}
