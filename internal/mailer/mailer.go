package mailer

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type Mensagem struct {
	ID       string
	Para     string
	Telefone string
	Assunto  string
	Corpo    string
}

type Enviador interface {
	Enviar(ctx context.Context, m Mensagem) error
}

// --------------------------------------------------
// Envio simulado (log)
// --------------------------------------------------

// LogEnviador registra a mensagem no log em vez de transmiti-la. É o
// transporte padrão deste repositório.
type LogEnviador struct {
	log zerolog.Logger
}

func NewLogEnviador(log zerolog.Logger) *LogEnviador {
	return &LogEnviador{log: log}
}

func (e *LogEnviador) Enviar(_ context.Context, m Mensagem) error {
	e.log.Info().
		Str("mensagem_id", m.ID).
		Str("para", m.Para).
		Str("assunto", m.Assunto).
		Msg("email simulado")
	e.log.Debug().
		Str("mensagem_id", m.ID).
		Str("corpo", m.Corpo).
		Msg("conteúdo do email simulado")
	return nil
}

// --------------------------------------------------
// SMS / WhatsApp via Twilio (opcional)
// --------------------------------------------------

type TwilioEnviador struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioEnviador(accountSID, authToken, from string) *TwilioEnviador {
	return &TwilioEnviador{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
	}
}

func (e *TwilioEnviador) Enviar(_ context.Context, m Mensagem) error {
	if m.Telefone == "" {
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(m.Telefone)
	params.SetFrom(e.from)
	params.SetBody(m.Corpo)

	_, err := e.client.Api.CreateMessage(params)
	return err
}

// --------------------------------------------------
// Composição
// --------------------------------------------------

// MultiEnviador despacha pela cadeia inteira; a primeira falha é
// devolvida, mas os transportes seguintes ainda são tentados.
type MultiEnviador []Enviador

func (me MultiEnviador) Enviar(ctx context.Context, m Mensagem) error {
	var first error
	for _, e := range me {
		if err := e.Enviar(ctx, m); err != nil && first == nil {
			first = err
		}
	}
	return first
}
