// Package fixtures holds the translated geographic sample data used to seed
// the database, and the helper that persists a single record from it.
package fixtures

import "geo_i18n/internal/domain"

// Override replaces one field of a record for one language.
type Override struct {
	Field string
	Lang  string
	Text  string
}

type Record struct {
	Name         string
	Denonym      string
	Translations []Override
}

// List returns the fixture list for kind, or nil for an unknown kind.
func List(kind domain.Kind) []Record {
	switch kind {
	case domain.KindRegion:
		return Regions
	case domain.KindCountry:
		return Countries
	case domain.KindCity:
		return Cities
	}
	return nil
}

var Regions = []Record{
	{
		Name:    "Europe",
		Denonym: "European",
		Translations: []Override{
			{"name", "de", "Europa"},
			{"name", "fr", "Europe"},
			{"name", "nl", "Europa"},
			{"name", "es", "Europa"},
			{"denonym", "de", "Europäisch"},
			{"denonym", "fr", "Européen"},
			{"denonym", "nl", "Europees"},
			{"denonym", "es", "Europeo"},
		},
	},
	{
		Name:    "Asia",
		Denonym: "Asian",
		Translations: []Override{
			{"name", "de", "Asien"},
			{"name", "fr", "Asie"},
			{"name", "nl", "Azië"},
			{"name", "es", "Asia"},
			{"denonym", "de", "Asiatisch"},
			{"denonym", "fr", "Asiatique"},
			{"denonym", "nl", "Aziatisch"},
			{"denonym", "es", "Asiático"},
		},
	},
	{
		Name:    "Africa",
		Denonym: "African",
		Translations: []Override{
			{"name", "de", "Afrika"},
			{"name", "fr", "Afrique"},
			{"name", "nl", "Afrika"},
			{"name", "es", "África"},
			{"denonym", "de", "Afrikanisch"},
			{"denonym", "fr", "Africain"},
			{"denonym", "nl", "Afrikaans"},
		},
	},
	{
		Name:    "North America",
		Denonym: "North American",
		Translations: []Override{
			{"name", "de", "Nordamerika"},
			{"name", "fr", "Amérique du Nord"},
			{"name", "nl", "Noord-Amerika"},
			{"name", "es", "América del Norte"},
			{"denonym", "de", "Nordamerikanisch"},
			{"denonym", "fr", "Nord-Américain"},
			{"denonym", "es", "Norteamericano"},
		},
	},
	{
		Name:    "South America",
		Denonym: "South American",
		Translations: []Override{
			{"name", "de", "Südamerika"},
			{"name", "fr", "Amérique du Sud"},
			{"name", "nl", "Zuid-Amerika"},
			{"name", "es", "América del Sur"},
			{"denonym", "es", "Sudamericano"},
		},
	},
	{
		Name:    "Oceania",
		Denonym: "Oceanian",
		Translations: []Override{
			{"name", "de", "Ozeanien"},
			{"name", "fr", "Océanie"},
			{"name", "nl", "Oceanië"},
			{"name", "es", "Oceanía"},
		},
	},
	{
		Name:    "Antarctica",
		Denonym: "Antarctic",
	},
}

var Countries = []Record{
	{
		Name:    "Germany",
		Denonym: "German",
		Translations: []Override{
			{"name", "de", "Deutschland"},
			{"name", "fr", "Allemagne"},
			{"name", "nl", "Duitsland"},
			{"name", "es", "Alemania"},
			{"denonym", "de", "Deutsch"},
			{"denonym", "fr", "Allemand"},
			{"denonym", "nl", "Duits"},
			{"denonym", "es", "Alemán"},
		},
	},
	{
		Name:    "France",
		Denonym: "French",
		Translations: []Override{
			{"name", "de", "Frankreich"},
			{"name", "fr", "France"},
			{"name", "nl", "Frankrijk"},
			{"name", "es", "Francia"},
			{"denonym", "de", "Französisch"},
			{"denonym", "fr", "Français"},
			{"denonym", "nl", "Frans"},
			{"denonym", "es", "Francés"},
		},
	},
	{
		Name:    "Netherlands",
		Denonym: "Dutch",
		Translations: []Override{
			{"name", "de", "Niederlande"},
			{"name", "fr", "Pays-Bas"},
			{"name", "nl", "Nederland"},
			{"name", "es", "Países Bajos"},
			{"denonym", "de", "Niederländisch"},
			{"denonym", "fr", "Néerlandais"},
			{"denonym", "nl", "Nederlands"},
			{"denonym", "es", "Neerlandés"},
		},
	},
	{
		Name:    "Spain",
		Denonym: "Spanish",
		Translations: []Override{
			{"name", "de", "Spanien"},
			{"name", "fr", "Espagne"},
			{"name", "nl", "Spanje"},
			{"name", "es", "España"},
			{"denonym", "de", "Spanisch"},
			{"denonym", "fr", "Espagnol"},
			{"denonym", "nl", "Spaans"},
			{"denonym", "es", "Español"},
		},
	},
	{
		Name:    "Italy",
		Denonym: "Italian",
		Translations: []Override{
			{"name", "de", "Italien"},
			{"name", "fr", "Italie"},
			{"name", "nl", "Italië"},
			{"name", "es", "Italia"},
			{"denonym", "de", "Italienisch"},
			{"denonym", "fr", "Italien"},
			{"denonym", "nl", "Italiaans"},
			{"denonym", "es", "Italiano"},
		},
	},
	{
		Name:    "Japan",
		Denonym: "Japanese",
		Translations: []Override{
			{"name", "de", "Japan"},
			{"name", "fr", "Japon"},
			{"name", "nl", "Japan"},
			{"name", "es", "Japón"},
			{"denonym", "de", "Japanisch"},
			{"denonym", "fr", "Japonais"},
			{"denonym", "es", "Japonés"},
		},
	},
	{
		Name:    "Brazil",
		Denonym: "Brazilian",
		Translations: []Override{
			{"name", "de", "Brasilien"},
			{"name", "fr", "Brésil"},
			{"name", "nl", "Brazilië"},
			{"name", "es", "Brasil"},
			{"denonym", "fr", "Brésilien"},
			{"denonym", "es", "Brasileño"},
		},
	},
	{
		Name:    "Canada",
		Denonym: "Canadian",
		Translations: []Override{
			{"name", "de", "Kanada"},
			{"name", "nl", "Canada"},
			{"name", "es", "Canadá"},
			{"denonym", "de", "Kanadisch"},
			{"denonym", "fr", "Canadien"},
		},
	},
	{
		Name:    "Australia",
		Denonym: "Australian",
		Translations: []Override{
			{"name", "de", "Australien"},
			{"name", "fr", "Australie"},
			{"name", "nl", "Australië"},
		},
	},
	{
		Name:    "Egypt",
		Denonym: "Egyptian",
		Translations: []Override{
			{"name", "de", "Ägypten"},
			{"name", "fr", "Égypte"},
			{"name", "nl", "Egypte"},
			{"name", "es", "Egipto"},
			{"denonym", "de", "Ägyptisch"},
			{"denonym", "fr", "Égyptien"},
		},
	},
}

var Cities = []Record{
	{
		Name:    "Berlin",
		Denonym: "Berliner",
		Translations: []Override{
			{"name", "fr", "Berlin"},
			{"name", "es", "Berlín"},
			{"denonym", "fr", "Berlinois"},
			{"denonym", "es", "Berlinés"},
		},
	},
	{
		Name:    "Munich",
		Denonym: "Munich resident",
		Translations: []Override{
			{"name", "de", "München"},
			{"name", "fr", "Munich"},
			{"name", "nl", "München"},
			{"name", "es", "Múnich"},
			{"denonym", "de", "Münchner"},
			{"denonym", "fr", "Munichois"},
			{"denonym", "es", "Muniqués"},
		},
	},
	{
		Name:    "Paris",
		Denonym: "Parisian",
		Translations: []Override{
			{"name", "nl", "Parijs"},
			{"name", "es", "París"},
			{"denonym", "de", "Pariser"},
			{"denonym", "fr", "Parisien"},
			{"denonym", "nl", "Parijzenaar"},
			{"denonym", "es", "Parisino"},
		},
	},
	{
		Name:    "Amsterdam",
		Denonym: "Amsterdammer",
		Translations: []Override{
			{"name", "es", "Ámsterdam"},
			{"denonym", "fr", "Amstellodamois"},
		},
	},
	{
		Name:    "The Hague",
		Denonym: "Hagenaar",
		Translations: []Override{
			{"name", "de", "Den Haag"},
			{"name", "fr", "La Haye"},
			{"name", "nl", "Den Haag"},
			{"name", "es", "La Haya"},
		},
	},
	{
		Name:    "Madrid",
		Denonym: "Madrilenian",
		Translations: []Override{
			{"denonym", "de", "Madrilene"},
			{"denonym", "fr", "Madrilène"},
			{"denonym", "es", "Madrileño"},
		},
	},
	{
		Name:    "Rome",
		Denonym: "Roman",
		Translations: []Override{
			{"name", "de", "Rom"},
			{"name", "fr", "Rome"},
			{"name", "nl", "Rome"},
			{"name", "es", "Roma"},
			{"denonym", "de", "Römer"},
			{"denonym", "fr", "Romain"},
			{"denonym", "nl", "Romein"},
			{"denonym", "es", "Romano"},
		},
	},
	{
		Name:    "Tokyo",
		Denonym: "Tokyoite",
		Translations: []Override{
			{"name", "de", "Tokio"},
			{"name", "nl", "Tokio"},
			{"name", "es", "Tokio"},
		},
	},
	{
		Name:    "Rio de Janeiro",
		Denonym: "Carioca",
	},
	{
		Name:    "Montreal",
		Denonym: "Montrealer",
		Translations: []Override{
			{"name", "fr", "Montréal"},
			{"denonym", "fr", "Montréalais"},
		},
	},
	{
		Name:    "Sydney",
		Denonym: "Sydneysider",
	},
	{
		Name:    "Cairo",
		Denonym: "Cairene",
		Translations: []Override{
			{"name", "de", "Kairo"},
			{"name", "fr", "Le Caire"},
			{"name", "nl", "Caïro"},
			{"name", "es", "El Cairo"},
		},
	},
}
