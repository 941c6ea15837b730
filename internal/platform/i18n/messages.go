// Copyright (c) 2026 Inner Garden. All rights reserved.

package i18n

// DefaultMessages is the seed message table for facet groups and sort modes.
var DefaultMessages = Messages{
	"facet.category":     {Ukrainian: "Категорія", English: "Category", German: "Kategorie"},
	"facet.mood":         {Ukrainian: "Настрій", English: "Mood", German: "Stimmung"},
	"facet.palette":      {Ukrainian: "Палітра", English: "Palette", German: "Farbpalette"},
	"facet.space":        {Ukrainian: "Простір", English: "Space", German: "Raum"},
	"facet.availability": {Ukrainian: "Наявність", English: "Availability", German: "Verfügbarkeit"},
	"facet.price":        {Ukrainian: "Ціна", English: "Price", German: "Preis"},

	"price.any":        {Ukrainian: "Будь-яка ціна", English: "Any price", German: "Jeder Preis"},
	"price.under-2000": {Ukrainian: "До 2000", English: "Under 2000", German: "Bis 2000"},
	"price.2000-4000":  {Ukrainian: "2000–4000", English: "2000–4000", German: "2000–4000"},
	"price.4000-8000":  {Ukrainian: "4000–8000", English: "4000–8000", German: "4000–8000"},
	"price.over-8000":  {Ukrainian: "Від 8000", English: "Over 8000", German: "Ab 8000"},

	"sort.featured":   {Ukrainian: "Рекомендовані", English: "Featured", German: "Empfohlen"},
	"sort.relevance":  {Ukrainian: "За релевантністю", English: "Relevance", German: "Relevanz"},
	"sort.price-asc":  {Ukrainian: "Ціна: за зростанням", English: "Price: low to high", German: "Preis: aufsteigend"},
	"sort.price-desc": {Ukrainian: "Ціна: за спаданням", English: "Price: high to low", German: "Preis: absteigend"},
	"sort.year-desc":  {Ukrainian: "Спочатку нові", English: "Newest first", German: "Neueste zuerst"},
	"sort.year-asc":   {Ukrainian: "Спочатку давні", English: "Oldest first", German: "Älteste zuerst"},
	"sort.size-desc":  {Ukrainian: "Спочатку великі", English: "Largest first", German: "Größte zuerst"},
	"sort.size-asc":   {Ukrainian: "Спочатку малі", English: "Smallest first", German: "Kleinste zuerst"},
	"sort.name-asc":   {Ukrainian: "За назвою", English: "Name A–Z", German: "Name A–Z"},
}
