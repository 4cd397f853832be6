package sftpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// ErrTooLarge is returned when a remote file exceeds the caller's limit.
var ErrTooLarge = errors.New("sftp: file exceeds size limit")

type Config struct {
	Host                  string
	Port                  int
	User                  string
	Pass                  string
	KnownHostsFile        string
	InsecureIgnoreHostKey bool
}

func (c Config) Configured() bool {
	return c.Host != "" && c.User != "" && c.Pass != ""
}

func (c Config) hostKeyCallback() (ssh.HostKeyCallback, error) {
	if c.InsecureIgnoreHostKey {
		return ssh.InsecureIgnoreHostKey(), nil
	}
	if c.KnownHostsFile == "" {
		return nil, errors.New("sftp: host key checking needs SFTP_KNOWN_HOSTS")
	}
	cb, err := knownhosts.New(c.KnownHostsFile)
	if err != nil {
		return nil, fmt.Errorf("sftp: known hosts: %w", err)
	}
	return cb, nil
}

// Fetcher downloads files from one SFTP account.
type Fetcher struct {
	Config Config
}

// Fetch reads remotePath fully. Files larger than maxBytes fail with
// ErrTooLarge; maxBytes <= 0 disables the limit.
func (f *Fetcher) Fetch(ctx context.Context, remotePath string, maxBytes int64) ([]byte, error) {
	cfg := f.Config
	if !cfg.Configured() {
		return nil, fmt.Errorf("sftp: missing env SFTP_HOST / SFTP_USER / SFTP_PASS")
	}
	if cfg.Port <= 0 {
		cfg.Port = 22
	}

	cb, err := cfg.hostKeyCallback()
	if err != nil {
		return nil, err
	}

	sshCfg := &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            []ssh.AuthMethod{ssh.Password(cfg.Pass)},
		HostKeyCallback: cb,
		Timeout:         20 * time.Second,
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	type dialRes struct {
		client *ssh.Client
		err    error
	}
	ch := make(chan dialRes, 1)
	go func() {
		c, err := ssh.Dial("tcp", addr, sshCfg)
		ch <- dialRes{client: c, err: err}
	}()

	var sshClient *ssh.Client
	select {
	case <-ctx.Done():
		go func() {
			if r := <-ch; r.client != nil {
				r.client.Close()
			}
		}()
		return nil, fmt.Errorf("sftp: dial canceled: %w", ctx.Err())
	case r := <-ch:
		if r.err != nil {
			return nil, fmt.Errorf("sftp: dial error: %w", r.err)
		}
		sshClient = r.client
	}
	defer sshClient.Close()

	sftpCli, err := sftp.NewClient(sshClient)
	if err != nil {
		return nil, fmt.Errorf("sftp: new client: %w", err)
	}
	defer sftpCli.Close()

	return download(ctx, sftpCli, remotePath, maxBytes)
}

// download reads remotePath over an established session. Cancelling ctx
// closes cli, which aborts a pending open or read.
func download(ctx context.Context, cli *sftp.Client, remotePath string, maxBytes int64) ([]byte, error) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			cli.Close()
		case <-done:
		}
	}()

	src, err := cli.Open(path.Clean(remotePath))
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("sftp: download canceled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("sftp: open remote file: %w", err)
	}
	defer src.Close()

	b, err := readLimited(src, maxBytes)
	if err != nil && ctx.Err() != nil {
		return nil, fmt.Errorf("sftp: download canceled: %w", ctx.Err())
	}
	return b, err
}

func readLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		return io.ReadAll(r)
	}
	b, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("sftp: download copy: %w", err)
	}
	if int64(len(b)) > maxBytes {
		return nil, ErrTooLarge
	}
	return b, nil
}
