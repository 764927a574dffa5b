package xapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"syscall"
)

// Each of the four bulk endpoints below follows the same shape: open
// a Task so the transfer is individually identifiable and cancellable,
// stream the body, and best-effort-cancel the task on any local
// error before returning it. Grounded on handlers/vdi.py's export /
// import_data and handlers/vm.py's export / restore.

const (
	vdiFormat = "vhd"
)

// ExportVM streams a full VM export (.xva) for snapRef to w.
func (s *Session) ExportVM(ctx context.Context, snapRef Ref, useCompression bool, w io.Writer) error {
	task, err := s.CreateTask(ctx, "vm export", "exporting "+string(snapRef))
	if err != nil {
		return err
	}

	q := url.Values{}
	q.Set("session_id", string(s.Handle))
	q.Set("task_id", string(task))
	q.Set("ref", string(snapRef))
	if useCompression {
		q.Set("use_compression", "true")
	}

	if err := s.streamGet(ctx, "/export", q, w); err != nil {
		s.cancelBestEffort(ctx, task)
		return err
	}
	return nil
}

// ImportVM streams r (a .xva, size bytes) to the master and returns
// the resulting VM reference. If srRef is non-null, the disks land on
// that SR; if restore is true, the original uuid and MAC addresses
// are preserved rather than regenerated.
func (s *Session) ImportVM(ctx context.Context, r io.Reader, size int64, srRef Ref, restore bool) (Ref, error) {
	task, err := s.CreateTask(ctx, "vm import", "importing vm")
	if err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("session_id", string(s.Handle))
	q.Set("task_id", string(task))
	if !srRef.IsNull() {
		q.Set("sr_id", string(srRef))
	}
	if restore {
		q.Set("restore", "true")
	}

	body, err := s.streamPut(ctx, "/import", q, r, size)
	if err != nil {
		s.cancelBestEffort(ctx, task)
		return "", err
	}
	return Ref(body), nil
}

// ExportRawVDI streams a per-disk .vhd export for vdiRef to w. If
// baseRef is non-null the export is a delta against that VDI.
func (s *Session) ExportRawVDI(ctx context.Context, vdiRef, baseRef Ref, w io.Writer) error {
	task, err := s.CreateTask(ctx, "vdi export", "exporting "+string(vdiRef))
	if err != nil {
		return err
	}

	q := url.Values{}
	q.Set("session_id", string(s.Handle))
	q.Set("task_id", string(task))
	q.Set("format", vdiFormat)
	q.Set("vdi", string(vdiRef))
	if !baseRef.IsNull() {
		q.Set("base", string(baseRef))
	}

	if err := s.streamGet(ctx, "/export_raw_vdi", q, w); err != nil {
		s.cancelBestEffort(ctx, task)
		return err
	}
	return nil
}

// ImportRawVDI streams r (a .vhd, size bytes) into vdiRef.
func (s *Session) ImportRawVDI(ctx context.Context, vdiRef Ref, r io.Reader, size int64) error {
	task, err := s.CreateTask(ctx, "vdi import", "importing "+string(vdiRef))
	if err != nil {
		return err
	}

	q := url.Values{}
	q.Set("session_id", string(s.Handle))
	q.Set("task_id", string(task))
	q.Set("format", vdiFormat)
	q.Set("vdi", string(vdiRef))

	if _, err := s.streamPut(ctx, "/import_raw_vdi", q, r, size); err != nil {
		s.cancelBestEffort(ctx, task)
		return err
	}
	return nil
}

func (s *Session) cancelBestEffort(ctx context.Context, task Ref) {
	if cerr := s.CancelTask(ctx, task); cerr != nil {
		s.log.WithError(cerr).Warn("failed to cancel task after transfer error")
	}
}

func (s *Session) streamGet(ctx context.Context, path string, q url.Values, w io.Writer) error {
	u := *s.MasterURL
	u.Path = path
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", path, ErrTransport, err)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ErrCancelled
		}
		return fmt.Errorf("%s: %w: %v", path, ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s: %w: http %d", path, ErrTransport, resp.StatusCode)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		if isNoSpace(err) {
			return fmt.Errorf("%s: %w", path, ErrNoSpace)
		}
		return fmt.Errorf("%s: %w: %v", path, ErrTransport, err)
	}
	return nil
}

func (s *Session) streamPut(ctx context.Context, path string, q url.Values, r io.Reader, size int64) (string, error) {
	u := *s.MasterURL
	u.Path = path
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u.String(), r)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %v", path, ErrTransport, err)
	}
	req.ContentLength = size
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := s.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("%s: %w: %v", path, ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%s: %w: http %d", path, ErrTransport, resp.StatusCode)
	}

	body := new(bytes.Buffer)
	if _, err := io.Copy(body, resp.Body); err != nil {
		return "", fmt.Errorf("%s: %w: %v", path, ErrTransport, err)
	}
	return body.String(), nil
}

// isNoSpace detects an out-of-space condition surfaced as a write
// error while streaming an export to the local filesystem. Per spec
// §4.4, ENOSPC is fatal and is never retried, unlike other I/O
// errors.
func isNoSpace(err error) bool {
	return errors.Is(err, syscall.ENOSPC)
}
