package agenda

// ===============================
// Status (agendamentos e atendimentos)
// ===============================

type Status string

const (
	StatusAgendado    Status = "agendado"
	StatusEmAndamento Status = "em_andamento"
	StatusConcluido   Status = "concluido"
	StatusCancelado   Status = "cancelado"
)

// Não há grafo de transição imposto: qualquer status pode ser definido
// via atualização direta. Apenas o valor em si é validado.
func StatusValido(s string) bool {
	switch Status(s) {
	case StatusAgendado, StatusEmAndamento, StatusConcluido, StatusCancelado:
		return true
	}
	return false
}

func StatusInicial() Status {
	return StatusAgendado
}
