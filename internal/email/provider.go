package email

// Email представляет структуру email сообщения
type Email struct {
	To      []string
	Subject string
	Body    string // text/html
}

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое email сообщение
	Send(email *Email) error

	// SendVerification отправляет email верификации
	SendVerification(to string, token string) error
}
