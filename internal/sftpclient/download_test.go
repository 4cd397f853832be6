package sftpclient

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/sftp"
)

func TestConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{name: "empty", cfg: Config{}, want: false},
		{name: "missing pass", cfg: Config{Host: "h", User: "u"}, want: false},
		{name: "complete", cfg: Config{Host: "h", User: "u", Pass: "p"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Configured(); got != tt.want {
				t.Errorf("Configured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHostKeyCallback(t *testing.T) {
	if _, err := (Config{InsecureIgnoreHostKey: true}).hostKeyCallback(); err != nil {
		t.Errorf("insecure mode: unexpected error %v", err)
	}

	_, err := (Config{}).hostKeyCallback()
	if err == nil || !strings.Contains(err.Error(), "SFTP_KNOWN_HOSTS") {
		t.Errorf("expected known hosts error, got %v", err)
	}

	_, err = (Config{KnownHostsFile: filepath.Join(t.TempDir(), "missing")}).hostKeyCallback()
	if err == nil || !strings.Contains(err.Error(), "sftp: known hosts") {
		t.Errorf("expected open error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "known_hosts")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := (Config{KnownHostsFile: path}).hostKeyCallback(); err != nil {
		t.Errorf("empty known hosts file: unexpected error %v", err)
	}
}

func TestFetchValidation(t *testing.T) {
	// A closed listener gives a port nothing answers on.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	testCases := []struct {
		name          string
		cfg           Config
		errorContains string
	}{
		{
			name:          "Missing credentials",
			cfg:           Config{},
			errorContains: "sftp: missing env SFTP_HOST / SFTP_USER / SFTP_PASS",
		},
		{
			name:          "Strict host keys without file",
			cfg:           Config{Host: "127.0.0.1", User: "u", Pass: "p"},
			errorContains: "SFTP_KNOWN_HOSTS",
		},
		{
			name:          "Nothing listening",
			cfg:           Config{Host: "127.0.0.1", Port: port, User: "u", Pass: "p", InsecureIgnoreHostKey: true},
			errorContains: "sftp: dial error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := &Fetcher{Config: tc.cfg}
			_, err := f.Fetch(context.Background(), "uploads/intro.pdf", 0)
			if err == nil {
				t.Fatalf("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.errorContains) {
				t.Errorf("Expected error to contain %q, got %q", tc.errorContains, err.Error())
			}
		})
	}
}

func TestFetchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// 192.0.2.0/24 is TEST-NET-1; the dial hangs or fails, the context wins.
	f := &Fetcher{Config: Config{Host: "192.0.2.1", User: "u", Pass: "p", InsecureIgnoreHostKey: true}}
	_, err := f.Fetch(ctx, "a.txt", 0)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, context.Canceled) && !strings.Contains(err.Error(), "dial error") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestReadLimited(t *testing.T) {
	b, err := readLimited(strings.NewReader("hello"), 5)
	if err != nil || string(b) != "hello" {
		t.Errorf("at limit: got %q, %v", b, err)
	}

	_, err = readLimited(strings.NewReader("hello!"), 5)
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("over limit: got %v, want ErrTooLarge", err)
	}

	b, err = readLimited(strings.NewReader("unbounded"), 0)
	if err != nil || string(b) != "unbounded" {
		t.Errorf("no limit: got %q, %v", b, err)
	}
}

// pipeClient serves h over an in-process pipe and returns a client for it.
func pipeClient(t *testing.T, h sftp.Handlers) *sftp.Client {
	t.Helper()
	serverConn, clientConn := net.Pipe()
	srv := sftp.NewRequestServer(serverConn, h)
	go func() { _ = srv.Serve() }()
	t.Cleanup(func() { _ = srv.Close() })

	cli, err := sftp.NewClientPipe(clientConn, clientConn)
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	t.Cleanup(func() { _ = cli.Close() })
	return cli
}

func TestDownload(t *testing.T) {
	cli := pipeClient(t, sftp.InMemHandler())

	w, err := cli.Create("/notes.txt")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := w.Write([]byte("hello sftp")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := download(context.Background(), cli, "/notes.txt", 0)
	if err != nil || string(b) != "hello sftp" {
		t.Errorf("got %q, %v", b, err)
	}

	if _, err := download(context.Background(), cli, "/notes.txt", 5); !errors.Is(err, ErrTooLarge) {
		t.Errorf("over limit: got %v, want ErrTooLarge", err)
	}

	if _, err := download(context.Background(), cli, "/missing.txt", 0); err == nil || !strings.Contains(err.Error(), "open remote file") {
		t.Errorf("missing file: got %v", err)
	}
}

type stallingReader struct{ release chan struct{} }

func (s stallingReader) ReadAt([]byte, int64) (int, error) {
	<-s.release
	return 0, io.EOF
}

type stallingGet struct{ release chan struct{} }

func (g stallingGet) Fileread(*sftp.Request) (io.ReaderAt, error) {
	return stallingReader(g), nil
}

func TestDownloadStopsOnCancel(t *testing.T) {
	release := make(chan struct{})
	h := sftp.InMemHandler()
	h.FileGet = stallingGet{release: release}
	cli := pipeClient(t, h)
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(50*time.Millisecond, cancel)

	errCh := make(chan error, 1)
	go func() {
		_, err := download(ctx, cli, "/big.bin", 0)
		errCh <- err
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("got %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("download ignored cancellation")
	}
}
