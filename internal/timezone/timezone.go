package timezone

import "time"

// O negócio opera em um único fuso.
const DefaultTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Hoje devolve a data corrente no formato usado por horários e
// agendamentos ("2006-01-02").
func Hoje() string {
	return Now().Format("2006-01-02")
}

func Amanha() string {
	return Now().AddDate(0, 0, 1).Format("2006-01-02")
}
