package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/pg-hostel-api/internal/application/dto"
	"github.com/jhoicas/pg-hostel-api/internal/application/ports"
	"github.com/jhoicas/pg-hostel-api/internal/domain"
	"github.com/jhoicas/pg-hostel-api/internal/domain/access"
	"github.com/jhoicas/pg-hostel-api/pkg/logger"
)

const (
	assistantTimeout       = 10 * time.Second
	assistantContextNotice = 5
)

// AssistantUseCase reenvía preguntas al asistente de IA con los anuncios recientes como contexto.
// Aplica un timeout de 10 segundos en cada llamada para que la latencia externa
// no bloquee los goroutines del servidor.
type AssistantUseCase struct {
	llm     ports.LLMService
	notices *NoticeUseCase
	log     *logger.Logger
}

// NewAssistantUseCase construye el caso de uso. llm nil = asistente no configurado.
func NewAssistantUseCase(llm ports.LLMService, notices *NoticeUseCase, log *logger.Logger) *AssistantUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AssistantUseCase{llm: llm, notices: notices, log: log}
}

// Ask valida la pregunta y delega al LLM. Cualquier fallo externo se reporta como ErrTransport.
func (uc *AssistantUseCase) Ask(ctx context.Context, actor access.Actor, in dto.AssistantRequest) (*dto.AssistantResponse, error) {
	if err := access.Authorize(actor, access.CapAskAssistant); err != nil {
		return nil, err
	}
	question := strings.TrimSpace(in.Question)
	if question == "" {
		return nil, domain.ErrMissingField
	}
	if uc.llm == nil {
		return nil, fmt.Errorf("%w: asistente no configurado", domain.ErrTransport)
	}

	var notes []string
	if uc.notices != nil {
		list, err := uc.notices.All(ctx)
		if err != nil {
			return nil, err
		}
		for i, n := range list {
			if i == assistantContextNotice {
				break
			}
			notes = append(notes, n.Title+": "+n.Content)
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, assistantTimeout)
	defer cancel()

	answer, err := uc.llm.AnswerResidentQuestion(callCtx, question, notes)
	if err != nil {
		uc.log.Error().Err(err).Str("user_id", actor.UserID).Msg("asistente IA falló")
		if errors.Is(err, domain.ErrTransport) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	return &dto.AssistantResponse{Answer: answer}, nil
}
