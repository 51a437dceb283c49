package share_handler

// ShareLinkResponse структура для ответа
type ShareLinkResponse struct {
	Link      string `json:"link"`
	QRCodeURL string `json:"qr_code_url"`
}
