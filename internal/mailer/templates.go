package mailer

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/PetCareServices/petcare-api/internal/domain/lembrete"
)

// DadosAgendamento alimenta os templates de e-mail.
type DadosAgendamento struct {
	ClienteNome string
	PetNome     string
	ServicoNome string
	Data        string
	Hora        string
}

const (
	assuntoConfirmacao = "Confirmação de Agendamento"
	assuntoLembrete    = "Lembrete de Consulta"
)

var tmplConfirmacao = template.Must(template.New("confirmacao").Parse(
	`Olá {{.ClienteNome}},

Seu agendamento para {{.ServicoNome}} com o pet {{.PetNome}} foi confirmado para o dia {{.Data}} às {{.Hora}}.

Caso precise cancelar ou reagendar, entre em contato conosco.

Atenciosamente,
Equipe Pet Shop
`))

var tmplLembrete = template.Must(template.New("lembrete").Parse(
	`Olá {{.ClienteNome}},

Lembramos que você tem um agendamento amanhã ({{.Data}}) às {{.Hora}} para {{.ServicoNome}} com o pet {{.PetNome}}.

Estamos aguardando você!

Atenciosamente,
Equipe Pet Shop
`))

// Montar renderiza assunto e corpo conforme o tipo do lembrete.
func Montar(tipo string, d DadosAgendamento) (string, string, error) {
	var (
		assunto string
		tmpl    *template.Template
	)

	switch tipo {
	case lembrete.TipoConfirmacao:
		assunto = assuntoConfirmacao
		tmpl = tmplConfirmacao
	case lembrete.TipoLembrete:
		assunto = assuntoLembrete
		tmpl = tmplLembrete
	default:
		return "", "", fmt.Errorf("tipo de lembrete desconhecido: %q", tipo)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return "", "", err
	}
	return assunto, buf.String(), nil
}
