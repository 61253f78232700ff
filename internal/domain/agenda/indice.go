package agenda

import "sync"

// IndicePorDia mantém em memória os ids de agendamentos agrupados por data
// ("2006-01-02"), para as visões de calendário. Dias sem agendamento não
// ficam no mapa.
type IndicePorDia struct {
	mu   sync.Mutex
	dias map[string][]uint
}

func NewIndicePorDia() *IndicePorDia {
	return &IndicePorDia{dias: make(map[string][]uint)}
}

func (i *IndicePorDia) Adicionar(data string, id uint) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.adicionar(data, id)
}

func (i *IndicePorDia) Remover(data string, id uint) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.remover(data, id)
}

// Mover tira o agendamento do balde do dia antigo e o coloca no novo,
// removendo o balde antigo se ficar vazio.
func (i *IndicePorDia) Mover(antiga, nova string, id uint) {
	if antiga == nova {
		return
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.remover(antiga, id)
	i.adicionar(nova, id)
}

func (i *IndicePorDia) Dia(data string) []uint {
	i.mu.Lock()
	defer i.mu.Unlock()

	ids, ok := i.dias[data]
	if !ok {
		return nil
	}
	out := make([]uint, len(ids))
	copy(out, ids)
	return out
}

func (i *IndicePorDia) TemDia(data string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	_, ok := i.dias[data]
	return ok
}

// Dias devolve uma cópia de todo o índice.
func (i *IndicePorDia) Dias() map[string][]uint {
	i.mu.Lock()
	defer i.mu.Unlock()

	out := make(map[string][]uint, len(i.dias))
	for data, ids := range i.dias {
		cp := make([]uint, len(ids))
		copy(cp, ids)
		out[data] = cp
	}
	return out
}

func (i *IndicePorDia) adicionar(data string, id uint) {
	for _, existente := range i.dias[data] {
		if existente == id {
			return
		}
	}
	i.dias[data] = append(i.dias[data], id)
}

func (i *IndicePorDia) remover(data string, id uint) {
	ids, ok := i.dias[data]
	if !ok {
		return
	}
	for idx, existente := range ids {
		if existente == id {
			ids = append(ids[:idx], ids[idx+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(i.dias, data)
		return
	}
	i.dias[data] = ids
}
