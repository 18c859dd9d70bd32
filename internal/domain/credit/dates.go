package credit

import "time"

// DateOf devuelve la fecha calendario de t (en su propia zona) como medianoche UTC.
// Todas las comparaciones de fechas de cuotas se hacen sobre este valor.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddMonths suma n meses calendario a la fecha. Si el día no existe en el mes
// destino se usa el último día de ese mes (30/11 + 3 meses = 28/02 o 29/02).
// time.AddDate normalizaría 31/01 + 1 mes a 03/03, que no sirve para plazos.
func AddMonths(date time.Time, n int) time.Time {
	y, m, d := date.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, date.Location())
	last := daysIn(first.Year(), first.Month())
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, date.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
