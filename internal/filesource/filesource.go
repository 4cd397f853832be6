// Package filesource turns an upload source (inline base64, a file under the
// upload directory, or an sftp:// path) into bytes and a filename.
package filesource

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
)

const (
	SFTPScheme      = "sftp://"
	DefaultMaxBytes = 100 << 20
)

var (
	ErrNoSource       = errors.New("provide exactly one of path or content_base64")
	ErrNoFilename     = errors.New("filename is required with content_base64")
	ErrLocalDisabled  = errors.New("local paths are disabled: MENTORTOOLS_UPLOAD_DIR is not set")
	ErrRemoteDisabled = errors.New("sftp paths are disabled: SFTP_HOST / SFTP_USER / SFTP_PASS are not set")
	ErrTooLarge       = errors.New("file exceeds upload size limit")
)

// Fetcher reads a remote file; *sftpclient.Fetcher implements it.
type Fetcher interface {
	Fetch(ctx context.Context, remotePath string, maxBytes int64) ([]byte, error)
}

type Source struct {
	Path          string
	ContentBase64 string
	Filename      string
}

type File struct {
	Name    string
	Content []byte
}

type Resolver struct {
	// Dir confines local paths. Empty disables them.
	Dir string
	// Remote serves sftp:// paths. Nil disables them.
	Remote   Fetcher
	MaxBytes int64
}

func (r *Resolver) maxBytes() int64 {
	if r.MaxBytes > 0 {
		return r.MaxBytes
	}
	return DefaultMaxBytes
}

// Load resolves src. An explicit Filename always wins over the name derived
// from Path.
func (r *Resolver) Load(ctx context.Context, src Source) (File, error) {
	hasPath := strings.TrimSpace(src.Path) != ""
	hasInline := src.ContentBase64 != ""
	if hasPath == hasInline {
		return File{}, ErrNoSource
	}

	var (
		f   File
		err error
	)
	switch {
	case hasInline:
		if src.Filename == "" {
			return File{}, ErrNoFilename
		}
		f.Content, err = r.decode(src.ContentBase64)
	case strings.HasPrefix(src.Path, SFTPScheme):
		remote := strings.TrimPrefix(src.Path, SFTPScheme)
		f.Name = path.Base(remote)
		f.Content, err = r.remote(ctx, remote)
	default:
		f.Name = filepath.Base(src.Path)
		f.Content, err = r.local(src.Path)
	}
	if err != nil {
		return File{}, err
	}

	if src.Filename != "" {
		f.Name = src.Filename
	}
	if f.Name == "" || f.Name == "." || f.Name == "/" {
		return File{}, fmt.Errorf("cannot derive a filename from %q", src.Path)
	}
	return f, nil
}

func (r *Resolver) decode(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if int64(base64.StdEncoding.DecodedLen(len(s))) > r.maxBytes()+2 {
		return nil, ErrTooLarge
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		b, err = base64.RawStdEncoding.DecodeString(s)
	}
	if err != nil {
		return nil, fmt.Errorf("content_base64: %w", err)
	}
	if int64(len(b)) > r.maxBytes() {
		return nil, ErrTooLarge
	}
	return b, nil
}

func (r *Resolver) remote(ctx context.Context, remotePath string) ([]byte, error) {
	if r.Remote == nil {
		return nil, ErrRemoteDisabled
	}
	if remotePath == "" {
		return nil, errors.New("sftp path is empty")
	}
	return r.Remote.Fetch(ctx, remotePath, r.maxBytes())
}

func (r *Resolver) local(p string) ([]byte, error) {
	if r.Dir == "" {
		return nil, ErrLocalDisabled
	}
	full, err := securejoin.SecureJoin(r.Dir, p)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", p, err)
	}
	fi, err := os.Stat(full)
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", p, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%q is a directory", p)
	}
	if fi.Size() > r.maxBytes() {
		return nil, ErrTooLarge
	}
	return os.ReadFile(full)
}
