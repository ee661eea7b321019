// Package cache adaptadores de caché sobre Redis.
package cache

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/pg-hostel-api/internal/application/ports"
	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
	"github.com/jhoicas/pg-hostel-api/pkg/config"
)

// NewClient crea el cliente Redis y comprueba la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig, useTLS bool) (*redis.Client, error) {
	options := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	// TLS en producción cuando hay password
	if useTLS && cfg.Password != "" {
		options.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(options)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("conectar a redis: %w", err)
	}
	return client, nil
}

const (
	noticesKey        = "pg:notices:all"
	noticesVersionKey = "pg:notices:ver"
)

var _ ports.NoticeCache = (*NoticeCache)(nil)

// NoticeCache guarda la lista completa del tablón como JSON con TTL.
type NoticeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewNoticeCache construye la caché.
func NewNoticeCache(client *redis.Client, ttl time.Duration) *NoticeCache {
	return &NoticeCache{client: client, ttl: ttl}
}

type noticeRecord struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// Get lee la versión vigente y la lista guardada bajo ella. En miss devuelve
// (nil, versión, false, nil); sin clave de versión la versión es 0.
func (c *NoticeCache) Get(ctx context.Context) ([]*entity.Notice, int64, bool, error) {
	version, err := c.client.Get(ctx, noticesVersionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, false, err
	}
	raw, err := c.client.Get(ctx, listKey(version)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, version, false, nil
	}
	if err != nil {
		return nil, version, false, err
	}
	var records []noticeRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, version, false, fmt.Errorf("decodificar caché de anuncios: %w", err)
	}
	out := make([]*entity.Notice, 0, len(records))
	for _, r := range records {
		out = append(out, &entity.Notice{ID: r.ID, Title: r.Title, Content: r.Content, CreatedBy: r.CreatedBy, CreatedAt: r.CreatedAt})
	}
	return out, version, true, nil
}

// Set guarda la lista bajo version. Si la versión ya avanzó, la clave queda
// huérfana y expira con el TTL.
func (c *NoticeCache) Set(ctx context.Context, version int64, notices []*entity.Notice) error {
	records := make([]noticeRecord, 0, len(notices))
	for _, n := range notices {
		records = append(records, noticeRecord{ID: n.ID, Title: n.Title, Content: n.Content, CreatedBy: n.CreatedBy, CreatedAt: n.CreatedAt})
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listKey(version), raw, c.ttl).Err()
}

// Invalidate avanza la versión; la próxima lectura va al repositorio.
func (c *NoticeCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, noticesVersionKey).Err()
}

func listKey(version int64) string {
	return noticesKey + ":v" + strconv.FormatInt(version, 10)
}
