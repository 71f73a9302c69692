// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package requester

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/rpc/v2/json2"
)

const defaultTimeout = 30 * time.Second

var ErrUnexpectedStatus = errors.New("unexpected status code")

// EndpointRequester issues JSON-RPC 2.0 calls against a single endpoint.
// Methods are namespaced by [base], so "swap" is sent as "[base].swap".
type EndpointRequester struct {
	cli  *http.Client
	uri  string
	base string
}

func New(uri string, base string) *EndpointRequester {
	return &EndpointRequester{
		cli:  &http.Client{Timeout: defaultTimeout},
		uri:  uri,
		base: base,
	}
}

func (e *EndpointRequester) SendRequest(
	ctx context.Context,
	method string,
	params interface{},
	reply interface{},
) error {
	uri, err := url.Parse(e.uri)
	if err != nil {
		return err
	}
	requestBodyBytes, err := json2.EncodeClientRequest(e.base+"."+method, params)
	if err != nil {
		return fmt.Errorf("problem marshaling request: %w", err)
	}
	request, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		uri.String(),
		bytes.NewBuffer(requestBodyBytes),
	)
	if err != nil {
		return fmt.Errorf("problem creating request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := e.cli.Do(request)
	if err != nil {
		return fmt.Errorf("problem issuing request: %w", err)
	}
	defer resp.Body.Close()

	if err := json2.DecodeClientResponse(resp.Body, reply); err != nil {
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%w: %d: %w", ErrUnexpectedStatus, resp.StatusCode, err)
		}
		return err
	}
	return nil
}
