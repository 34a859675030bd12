// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client runs the terminal front end until the user quits or the process
// is signalled. Pending history uploads are settled before Run returns.
type Client interface {
	Run() error
}

// UI is the front end an App drives. Run returns when the user quits or
// ctx is done.
type UI interface {
	Run(ctx context.Context) error
}
