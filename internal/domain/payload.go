package domain

// Payload é o conteúdo autocontido entregue ao canal de publicação.
// A decisão de sucesso/falha da entrega fica com o chamador
type Payload struct {
	Caption  string `json:"caption"` // HTML pronto para envio
	ImageURL string `json:"image_url,omitempty"`
	LinkURL  string `json:"link_url"`
}
