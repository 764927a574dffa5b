package xapi

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"

	"github.com/xenbackup/xenbackup/internal/common/core"
	"github.com/xenbackup/xenbackup/internal/common/logger"
)

// Session is an authenticated handle on a pool master. TLS
// verification is disabled here, once, explicitly: the hypervisor's
// management IP is internal and does not carry a certificate the
// standard trust store accepts. Keep this an explicit, documented
// switch (spec Design Notes, "Global SSL context") rather than a
// hidden default anywhere else in the module.
type Session struct {
	MasterURL *url.URL
	Handle    Ref
	http      *http.Client
	log       *logger.Logger
}

// Dial opens an HTTP client against master (no scheme, e.g.
// "10.0.0.1") but does not yet authenticate; call Login to obtain a
// session handle.
func Dial(master string, log *logger.Logger) (*Session, error) {
	u, err := url.Parse("https://" + master)
	if err != nil {
		return nil, core.ErrFailedToParseURL.WithArgs(err)
	}
	client := &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // internal hypervisor IP, see package doc
		},
	}
	return &Session{MasterURL: u, http: client, log: log}, nil
}

// Login authenticates and stores the resulting session reference.
func (s *Session) Login(ctx context.Context, username, password string) error {
	v, err := s.callRaw(ctx, core.Method("session", "login_with_password"), username, password, "1.0", "xenbackup")
	if err != nil {
		return err
	}
	ref, ok := v.(string)
	if !ok {
		return core.ErrUnexpectedValueShape.WithArgs(v)
	}
	s.Handle = RefOrNull(ref)
	return nil
}

// Logout releases the session handle. It is always called from a
// defer in the caller so the session is released even on error paths.
func (s *Session) Logout(ctx context.Context) error {
	if s.Handle.IsNull() {
		return nil
	}
	_, err := s.callRaw(ctx, core.Method("session", "logout"), s.Handle)
	return err
}

// Call invokes a namespaced XML-RPC method with the session handle
// prepended to args, following the XenAPI convention that every
// authenticated call's first parameter is the session reference.
func (s *Session) Call(ctx context.Context, method string, args ...any) (any, error) {
	full := append([]any{s.Handle}, args...)
	return s.callRaw(ctx, method, full...)
}

// callRaw performs the request without injecting the session handle,
// used by Login itself (which has no handle yet).
func (s *Session) callRaw(ctx context.Context, method string, args ...any) (any, error) {
	body, err := encodeCall(method, args)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.MasterURL.String(), bytes.NewReader(body))
	if err != nil {
		return nil, core.ErrFailedToDoRequest.WithArgs(err)
	}
	req.Header.Set("Content-Type", "text/xml")

	resp, err := s.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s: %w", method, ErrCancelled)
		}
		return nil, fmt.Errorf("%s: %w: %v", method, ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%s: %w: http %d", method, ErrTransport, resp.StatusCode)
	}

	respBody, fault, err := readAndDecode(resp)
	if err != nil {
		return nil, err
	}
	if fault != nil {
		fv, _ := decodeValue(fault.Value)
		return nil, fmt.Errorf("%s: %w", method, &APIFailure{Code: "TransportFault", Details: []string{fmt.Sprint(fv)}})
	}

	m, ok := respBody.(map[string]any)
	if !ok {
		return nil, core.ErrUnexpectedValueShape.WithArgs(respBody)
	}
	status, _ := m["Status"].(string)
	if status == "Success" {
		return m["Value"], nil
	}

	details := toStringSlice(m["ErrorDescription"])
	if len(details) > 0 && details[0] == "SESSION_INVALID" {
		return nil, fmt.Errorf("%s: %w", method, ErrAuth)
	}
	code := "UNKNOWN"
	if len(details) > 0 {
		code = details[0]
	}
	return nil, fmt.Errorf("%s: %w", method, &APIFailure{Code: code, Details: details})
}

func readAndDecode(resp *http.Response) (any, *xmlRPCFault, error) {
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, nil, core.ErrFailedToReadResponseBody.WithArgs(err)
	}
	return decodeResponse(buf.Bytes())
}

func toStringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		out = append(out, fmt.Sprint(item))
	}
	return out
}
