package app

import (
	"astelab/astesearch/matcher"
)

// defaultPlaces is the built-in locality list offered to the autocomplete
// when no external file is configured. Capoluoghi plus a handful of towns
// that show up often in auction listings.
var defaultPlaces = []matcher.Place{
	{Nome: "Roma", Provincia: "RM", Regione: "Lazio"},
	{Nome: "Milano", Provincia: "MI", Regione: "Lombardia"},
	{Nome: "Napoli", Provincia: "NA", Regione: "Campania"},
	{Nome: "Torino", Provincia: "TO", Regione: "Piemonte"},
	{Nome: "Palermo", Provincia: "PA", Regione: "Sicilia"},
	{Nome: "Genova", Provincia: "GE", Regione: "Liguria"},
	{Nome: "Bologna", Provincia: "BO", Regione: "Emilia-Romagna"},
	{Nome: "Firenze", Provincia: "FI", Regione: "Toscana"},
	{Nome: "Bari", Provincia: "BA", Regione: "Puglia"},
	{Nome: "Catania", Provincia: "CT", Regione: "Sicilia"},
	{Nome: "Venezia", Provincia: "VE", Regione: "Veneto"},
	{Nome: "Verona", Provincia: "VR", Regione: "Veneto"},
	{Nome: "Messina", Provincia: "ME", Regione: "Sicilia"},
	{Nome: "Padova", Provincia: "PD", Regione: "Veneto"},
	{Nome: "Trieste", Provincia: "TS", Regione: "Friuli-Venezia Giulia"},
	{Nome: "Brescia", Provincia: "BS", Regione: "Lombardia"},
	{Nome: "Parma", Provincia: "PR", Regione: "Emilia-Romagna"},
	{Nome: "Prato", Provincia: "PO", Regione: "Toscana"},
	{Nome: "Modena", Provincia: "MO", Regione: "Emilia-Romagna"},
	{Nome: "Reggio Calabria", Provincia: "RC", Regione: "Calabria"},
	{Nome: "Reggio nell'Emilia", Provincia: "RE", Regione: "Emilia-Romagna"},
	{Nome: "Perugia", Provincia: "PG", Regione: "Umbria"},
	{Nome: "Ravenna", Provincia: "RA", Regione: "Emilia-Romagna"},
	{Nome: "Livorno", Provincia: "LI", Regione: "Toscana"},
	{Nome: "Cagliari", Provincia: "CA", Regione: "Sardegna"},
	{Nome: "Foggia", Provincia: "FG", Regione: "Puglia"},
	{Nome: "Rimini", Provincia: "RN", Regione: "Emilia-Romagna"},
	{Nome: "Salerno", Provincia: "SA", Regione: "Campania"},
	{Nome: "Ferrara", Provincia: "FE", Regione: "Emilia-Romagna"},
	{Nome: "Sassari", Provincia: "SS", Regione: "Sardegna"},
	{Nome: "Latina", Provincia: "LT", Regione: "Lazio"},
	{Nome: "Monza", Provincia: "MB", Regione: "Lombardia"},
	{Nome: "Siracusa", Provincia: "SR", Regione: "Sicilia"},
	{Nome: "Pescara", Provincia: "PE", Regione: "Abruzzo"},
	{Nome: "Bergamo", Provincia: "BG", Regione: "Lombardia"},
	{Nome: "Forlì", Provincia: "FC", Regione: "Emilia-Romagna"},
	{Nome: "Trento", Provincia: "TN", Regione: "Trentino-Alto Adige"},
	{Nome: "Vicenza", Provincia: "VI", Regione: "Veneto"},
	{Nome: "Terni", Provincia: "TR", Regione: "Umbria"},
	{Nome: "Bolzano", Provincia: "BZ", Regione: "Trentino-Alto Adige"},
	{Nome: "Novara", Provincia: "NO", Regione: "Piemonte"},
	{Nome: "Piacenza", Provincia: "PC", Regione: "Emilia-Romagna"},
	{Nome: "Ancona", Provincia: "AN", Regione: "Marche"},
	{Nome: "Andria", Provincia: "BT", Regione: "Puglia"},
	{Nome: "Udine", Provincia: "UD", Regione: "Friuli-Venezia Giulia"},
	{Nome: "Arezzo", Provincia: "AR", Regione: "Toscana"},
	{Nome: "Cesena", Provincia: "FC", Regione: "Emilia-Romagna"},
	{Nome: "Lecce", Provincia: "LE", Regione: "Puglia"},
	{Nome: "Pesaro", Provincia: "PU", Regione: "Marche"},
	{Nome: "La Spezia", Provincia: "SP", Regione: "Liguria"},
	{Nome: "Alessandria", Provincia: "AL", Regione: "Piemonte"},
	{Nome: "Pisa", Provincia: "PI", Regione: "Toscana"},
	{Nome: "Pistoia", Provincia: "PT", Regione: "Toscana"},
	{Nome: "Catanzaro", Provincia: "CZ", Regione: "Calabria"},
	{Nome: "Lucca", Provincia: "LU", Regione: "Toscana"},
	{Nome: "Brindisi", Provincia: "BR", Regione: "Puglia"},
	{Nome: "Treviso", Provincia: "TV", Regione: "Veneto"},
	{Nome: "Como", Provincia: "CO", Regione: "Lombardia"},
	{Nome: "Grosseto", Provincia: "GR", Regione: "Toscana"},
	{Nome: "Varese", Provincia: "VA", Regione: "Lombardia"},
	{Nome: "L'Aquila", Provincia: "AQ", Regione: "Abruzzo"},
	{Nome: "Trapani", Provincia: "TP", Regione: "Sicilia"},
	{Nome: "Cosenza", Provincia: "CS", Regione: "Calabria"},
	{Nome: "Potenza", Provincia: "PZ", Regione: "Basilicata"},
	{Nome: "Matera", Provincia: "MT", Regione: "Basilicata"},
	{Nome: "Campobasso", Provincia: "CB", Regione: "Molise"},
	{Nome: "Aosta", Provincia: "AO", Regione: "Valle d'Aosta"},
	{Nome: "Crotone", Provincia: "KR", Regione: "Calabria"},
	{Nome: "Rieti", Provincia: "RI", Regione: "Lazio"},
	{Nome: "Riccione", Provincia: "RN", Regione: "Emilia-Romagna"},
	{Nome: "Cefalù", Provincia: "PA", Regione: "Sicilia"},
	{Nome: "Forlì del Sannio", Provincia: "IS", Regione: "Molise"},
}

// DefaultPlaces returns a copy of the built-in locality list.
func DefaultPlaces() []matcher.Place {
	out := make([]matcher.Place, len(defaultPlaces))
	copy(out, defaultPlaces)
	return out
}

// uniquePlaces drops entries whose normalized name was already seen, keeping
// the first occurrence and its casing.
func uniquePlaces(places []matcher.Place) []matcher.Place {
	seen := make(map[string]struct{}, len(places))
	res := make([]matcher.Place, 0, len(places))
	for _, p := range places {
		key := matcher.Normalize(p.Nome)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		res = append(res, p)
	}
	return res
}
