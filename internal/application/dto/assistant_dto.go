package dto

// AssistantRequest pregunta para el asistente externo.
type AssistantRequest struct {
	Question string `json:"question"`
}

// AssistantResponse respuesta del asistente.
type AssistantResponse struct {
	Answer string `json:"answer"`
}
