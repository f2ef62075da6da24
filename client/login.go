package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

var ErrLoginRejected = errors.New("login rejected")

type loginResponse struct {
	Assertion string `json:"assertion"`
	CurUser   struct {
		LoggedIn bool   `json:"loggedin"`
		Username string `json:"username"`
	} `json:"curuser"`
}

// Login trades credentials and the server's challstr for an assertion that Rename
// sends back over the socket.
func Login(ctx context.Context, hc *http.Client, loginURL, user, pass, challstr string) (string, error) {
	if hc == nil {
		hc = http.DefaultClient
	}
	form := url.Values{
		"name":     {user},
		"pass":     {pass},
		"challstr": {challstr},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("error building login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("error calling login server: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading login response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrLoginRejected, resp.StatusCode)
	}

	// The login server prefixes JSON with "]" to defeat JSON hijacking.
	var lr loginResponse
	if err := json.Unmarshal([]byte(strings.TrimPrefix(string(body), "]")), &lr); err != nil {
		return "", fmt.Errorf("error decoding login response: %w", err)
	}
	if lr.Assertion == "" || strings.HasPrefix(lr.Assertion, ";;") {
		return "", fmt.Errorf("%w: %s", ErrLoginRejected, strings.TrimPrefix(lr.Assertion, ";;"))
	}
	return lr.Assertion, nil
}
