// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"strings"

	"dario.cat/mergo"

	"rivaas.dev/jsonapi"
	"rivaas.dev/jsonapi/query"
)

// Static errors for client operations.
var (
	ErrBaseURLRequired = errors.New("base URL is required")
	ErrIDRequired      = errors.New("resource id is required")
)

// defaultHeaders are sent on every request unless overridden.
var defaultHeaders = map[string]string{
	"Accept":       jsonapi.MediaType,
	"Content-Type": jsonapi.MediaType,
}

// Client is a thin JSON:API transport collaborator. It wires the core
// transforms to an HTTP server: request bodies come from [jsonapi.Serialize],
// query strings from [query.Params], and response bodies go through
// [jsonapi.Deserialize]. All configuration lives on the instance; there is
// no package-level state.
//
// A Client is safe for concurrent use.
type Client struct {
	baseURL string
	headers map[string]string
	hc      *http.Client
	log     *slog.Logger
	opts    []jsonapi.Option
}

// New creates a client for a JSON:API server.
//
// Example:
//
//	api, err := client.New("https://kitsu.io/api/edge",
//	    client.WithHeader("Authorization", "Bearer "+token))
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: make(map[string]string),
		hc:      &http.Client{},
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Get fetches a single resource by id and deserialises it.
func (c *Client) Get(ctx context.Context, model, id string, params *query.Params) (*jsonapi.Result, error) {
	if id == "" {
		return nil, ErrIDRequired
	}

	doc, err := c.do(ctx, http.MethodGet, c.url(model, id, params), nil)
	if err != nil {
		return nil, err
	}

	return jsonapi.Deserialize(doc, c.opts...)
}

// List fetches a resource collection and deserialises it. Null or empty
// primary data yields an empty ordered list, never nil.
func (c *Client) List(ctx context.Context, model string, params *query.Params) (*jsonapi.Result, error) {
	doc, err := c.do(ctx, http.MethodGet, c.url(model, "", params), nil)
	if err != nil {
		return nil, err
	}

	return jsonapi.Deserialize(doc, append([]jsonapi.Option{jsonapi.WithCollection()}, c.opts...)...)
}

// Create serialises the body and POSTs it as a new resource.
func (c *Client) Create(ctx context.Context, model string, body map[string]any) (*jsonapi.Result, error) {
	payload, err := jsonapi.Serialize(model, body, http.MethodPost, c.opts...)
	if err != nil {
		return nil, err
	}

	doc, err := c.do(ctx, http.MethodPost, c.url(model, "", nil), payload)
	if err != nil {
		return nil, err
	}

	return jsonapi.Deserialize(doc, c.opts...)
}

// Update serialises the body and PATCHes the resource identified by its id.
// Only keys present on the body are sent, so unset fields keep their
// server-side values.
func (c *Client) Update(ctx context.Context, model string, body map[string]any) (*jsonapi.Result, error) {
	payload, err := jsonapi.Serialize(model, body, http.MethodPatch, c.opts...)
	if err != nil {
		return nil, err
	}

	id := payload.Data.(*jsonapi.Resource).ID

	doc, err := c.do(ctx, http.MethodPatch, c.url(model, id, nil), payload)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		// 204 No Content: the server accepted the patch without echoing it.
		return &jsonapi.Result{}, nil
	}

	return jsonapi.Deserialize(doc, c.opts...)
}

// Delete removes the resource identified by id.
func (c *Client) Delete(ctx context.Context, model, id string) error {
	payload, err := jsonapi.Serialize(model, map[string]any{"id": id}, http.MethodDelete, c.opts...)
	if err != nil {
		return err
	}

	_, err = c.do(ctx, http.MethodDelete, c.url(model, id, nil), payload)

	return err
}

// url builds the request URL from the wire resource type, an optional id and
// optional query parameters.
func (c *Client) url(model, id string, params *query.Params) string {
	u := c.baseURL + "/" + jsonapi.ResourceType(model, c.opts...)
	if id != "" {
		u += "/" + id
	}
	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}

	return u
}

// do performs one HTTP round trip. A nil return document means the server
// answered 204 No Content. Responses with status >= 400 surface their error
// objects as a *jsonapi.DocumentError.
func (c *Client) do(ctx context.Context, method, url string, payload *jsonapi.Document) (*jsonapi.Document, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	for key, value := range c.requestHeaders() {
		req.Header.Set(key, value)
	}

	c.log.DebugContext(ctx, "jsonapi request", "method", method, "url", url)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.DebugContext(ctx, "jsonapi response", "method", method, "url", url, "status", resp.StatusCode)

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	doc, parseErr := jsonapi.Parse(resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		if parseErr == nil && len(doc.Errors) > 0 {
			return nil, &jsonapi.DocumentError{Errors: doc.Errors}
		}
		return nil, fmt.Errorf("request failed: %s", resp.Status)
	}

	if parseErr != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", parseErr)
	}

	return doc, nil
}

// requestHeaders merges the default headers with the client's configured
// headers; configured values win.
func (c *Client) requestHeaders() map[string]string {
	merged := maps.Clone(defaultHeaders)
	if err := mergo.Merge(&merged, c.headers, mergo.WithOverride); err != nil {
		// Merging two flat string maps cannot fail; fall back to configured
		// headers only if it ever does.
		return c.headers
	}

	return merged
}
