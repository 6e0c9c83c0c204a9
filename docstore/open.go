// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package docstore

import (
	"context"
	"fmt"
	"time"

	"github.com/tarantool/go-tarantool"

	"github.com/danielhkuo/quickpoll/cliparse"
)

// Open returns the Store selected by cfg.DatabaseType
func Open(ctx context.Context, cfg cliparse.Config) (Store, error) {
	switch cfg.DatabaseType {
	case TypeSQLite, TypePostgres:
		return OpenSQL(ctx, cfg.DatabaseType, cfg.DatabaseURL, cfg.Collection)
	case TypeTarantool:
		return OpenTarantool(cfg.DatabaseURL, cfg.Collection, tarantool.Opts{
			User:          cfg.TarantoolUser,
			Pass:          cfg.TarantoolPass,
			Timeout:       5 * time.Second,
			Reconnect:     1 * time.Second,
			MaxReconnects: 5,
		})
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
}
