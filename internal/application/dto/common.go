package dto

// ErrorResponse cuerpo de error HTTP. El mensaje viaja en "error" porque es el
// campo que muestran los clientes web.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}
