package gadsdomain

// ErrorResponse representa a estrutura de erro da API do Google Ads
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Google Ads
type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// IsTokenExpired verifica se o erro é de credencial expirada
func (e *ErrorResponse) IsTokenExpired() bool {
	// UNAUTHENTICATED (401) indica access token expirado ou inválido;
	// o refresh token continua válido e permite renovar
	return e.Error.Code == 401 || e.Error.Status == "UNAUTHENTICATED"
}
