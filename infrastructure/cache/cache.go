// Package cache guarda por pouco tempo as respostas dos relatórios
package cache

import (
	"context"
	"time"
)

// ReportCache serializa os valores em JSON. Get devolve false quando a chave
// não existe ou expirou.
type ReportCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Invalidate(ctx context.Context, prefix string) error
	Close() error
}

// NoopReportCache é usado quando não há Redis configurado
type NoopReportCache struct{}

func (NoopReportCache) Get(_ context.Context, _ string, _ any) (bool, error) {
	return false, nil
}

func (NoopReportCache) Set(_ context.Context, _ string, _ any, _ time.Duration) error {
	return nil
}

func (NoopReportCache) Invalidate(_ context.Context, _ string) error {
	return nil
}

func (NoopReportCache) Close() error {
	return nil
}
