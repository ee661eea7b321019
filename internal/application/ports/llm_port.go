package ports

import "context"

// LLMService define el puerto de salida hacia el asistente de IA externo.
// Cualquier adaptador (Anthropic, Gemini, mock) debe implementar esta interfaz;
// la aplicación solo conoce este contrato.
type LLMService interface {
	// AnswerResidentQuestion responde una pregunta de un residente usando como
	// contexto los anuncios vigentes del PG.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	AnswerResidentQuestion(ctx context.Context, question string, notices []string) (string, error)
}
