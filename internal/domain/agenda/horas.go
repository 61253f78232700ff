package agenda

import "time"

const formatoHora = "15:04"

// GerarHoras produz a sequência de horários de inicio (inclusive) até fim
// (exclusive), em passos de intervaloMin minutos. Entradas degeneradas
// (inicio >= fim, intervalo não positivo, hora malformada) produzem uma
// lista vazia, sem erro.
func GerarHoras(inicio, fim string, intervaloMin int) []string {
	if intervaloMin <= 0 {
		return []string{}
	}

	ini, err := time.Parse(formatoHora, inicio)
	if err != nil {
		return []string{}
	}
	fimT, err := time.Parse(formatoHora, fim)
	if err != nil {
		return []string{}
	}

	if !ini.Before(fimT) {
		return []string{}
	}

	passo := time.Duration(intervaloMin) * time.Minute

	horas := []string{}
	for cur := ini; cur.Before(fimT); cur = cur.Add(passo) {
		horas = append(horas, cur.Format(formatoHora))
	}
	return horas
}
