package lambda

import "strings"

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// Header returns a request header by name, case-insensitively. API
// Gateway does not normalize header casing.
func (r *Request) Header(nome string) string {
	if valor, ok := r.Headers[nome]; ok {
		return valor
	}
	for chave, valor := range r.Headers {
		if strings.EqualFold(chave, nome) {
			return valor
		}
	}
	return ""
}
