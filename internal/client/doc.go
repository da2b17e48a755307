// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It parses a subcommand with its flags, calls the post board server through
// an [adapter.ServerAdapter] and prints the result.
//
//	client register -name alice -email alice@example.com -password secret1
//	client login -email alice@example.com -password secret1
//	client post -token alice@example.com -title hello -description world
//	client posts -token alice@example.com
//	client version
package client
