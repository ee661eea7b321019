package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pg-hostel-api/internal/application/dto"
	"github.com/jhoicas/pg-hostel-api/internal/application/ports"
	"github.com/jhoicas/pg-hostel-api/internal/domain"
	"github.com/jhoicas/pg-hostel-api/internal/domain/access"
	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
	"github.com/jhoicas/pg-hostel-api/internal/domain/repository"
	"github.com/jhoicas/pg-hostel-api/pkg/logger"
)

// NoticeUseCase tablón de anuncios con caché opcional de la lista.
type NoticeUseCase struct {
	notices repository.NoticeRepository
	users   repository.UserRepository
	cache   ports.NoticeCache
	metrics ports.Recorder
	log     *logger.Logger
	now     func() time.Time
}

// NewNoticeUseCase construye el caso de uso. cache nil = sin caché.
func NewNoticeUseCase(notices repository.NoticeRepository, users repository.UserRepository, cache ports.NoticeCache, metrics ports.Recorder, log *logger.Logger) *NoticeUseCase {
	if cache == nil {
		cache = ports.NopNoticeCache{}
	}
	if metrics == nil {
		metrics = ports.NopRecorder{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &NoticeUseCase{notices: notices, users: users, cache: cache, metrics: metrics, log: log, now: time.Now}
}

// Post publica un anuncio (solo Admin).
func (uc *NoticeUseCase) Post(ctx context.Context, actor access.Actor, in dto.CreateNoticeRequest) (*dto.NoticeResponse, error) {
	if err := access.Authorize(actor, access.CapPostNotice); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return nil, domain.ErrMissingField
	}
	author := actor.UserID
	if u, err := uc.users.GetByID(ctx, actor.UserID); err != nil {
		return nil, err
	} else if u != nil {
		author = u.Name
	}
	n := &entity.Notice{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		CreatedBy: author,
		CreatedAt: uc.now(),
	}
	if err := uc.notices.Create(ctx, n); err != nil {
		return nil, err
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo invalidar la caché de anuncios")
	}
	uc.metrics.NoticePosted()
	uc.log.Info().Str("notice_id", n.ID).Msg("anuncio publicado")
	out := dto.FromNotice(n)
	return &out, nil
}

// List anuncios, más recientes primero. No tiene efectos: puede repetirse.
func (uc *NoticeUseCase) List(ctx context.Context, actor access.Actor) ([]dto.NoticeResponse, error) {
	if err := access.Authorize(actor, access.CapViewNotices); err != nil {
		return nil, err
	}
	list, err := uc.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NoticeResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.FromNotice(n))
	}
	return out, nil
}

// All lista completa pasando por la caché. Los fallos de caché solo se registran.
// La lista leída del repositorio se guarda bajo la versión observada antes de
// leerla: si Post invalida en medio, la escritura queda en una versión vieja.
func (uc *NoticeUseCase) All(ctx context.Context) ([]*entity.Notice, error) {
	cached, version, hit, cacheErr := uc.cache.Get(ctx)
	if cacheErr != nil {
		uc.log.Warn().Err(cacheErr).Msg("caché de anuncios no disponible")
	}
	if hit {
		return cached, nil
	}
	list, err := uc.notices.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	if cacheErr == nil {
		if err := uc.cache.Set(ctx, version, list); err != nil {
			uc.log.Warn().Err(err).Msg("no se pudo guardar la caché de anuncios")
		}
	}
	return list, nil
}
