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
	"log/slog"
	"net/http"
	"time"

	"rivaas.dev/jsonapi"
)

// Option configures a Client.
type Option func(*Client)

// WithHeader sets a header sent on every request. Configured headers
// override the defaults, including Accept and Content-Type.
//
// Example:
//
//	client.New(base, client.WithHeader("Authorization", "Bearer "+token))
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithHeaders sets several headers at once.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for key, value := range headers {
			c.headers[key] = value
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client, for custom transports,
// proxies or test doubles.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.hc = hc
		}
	}
}

// WithTimeout sets the request timeout on the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.hc.Timeout = timeout
	}
}

// WithLogger sets a structured logger for request/response events. The
// default logger discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithSerializerOptions forwards transformer options to every Serialize and
// Deserialize call the client makes.
//
// Example:
//
//	client.New(base, client.WithSerializerOptions(
//	    jsonapi.WithoutPluralization(),
//	    jsonapi.WithCamelization(),
//	))
func WithSerializerOptions(opts ...jsonapi.Option) Option {
	return func(c *Client) {
		c.opts = append(c.opts, opts...)
	}
}
