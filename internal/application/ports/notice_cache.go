package ports

import (
	"context"

	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
)

// NoticeCache caché versionada de la lista del tablón. Get devuelve la versión
// vigente aunque no haya hit; Set guarda bajo esa versión, así una lectura que
// empezó antes de Invalidate nunca pisa la lista de la versión nueva.
// Los fallos de caché no son fatales: el caso de uso vuelve al repositorio.
type NoticeCache interface {
	Get(ctx context.Context) (notices []*entity.Notice, version int64, hit bool, err error)
	Set(ctx context.Context, version int64, notices []*entity.Notice) error
	Invalidate(ctx context.Context) error
}

// NopNoticeCache caché deshabilitada (sin Redis configurado).
type NopNoticeCache struct{}

func (NopNoticeCache) Get(context.Context) ([]*entity.Notice, int64, bool, error) {
	return nil, 0, false, nil
}
func (NopNoticeCache) Set(context.Context, int64, []*entity.Notice) error { return nil }
func (NopNoticeCache) Invalidate(context.Context) error                   { return nil }
