package translation

// Strings used by template fragments and the document renderer.
var uiMessagesPolish = Table{
	"Security scan report":           "Raport z testów bezpieczeństwa",
	"Generated at":                   "Wygenerowano",
	"Number of reported findings":    "Liczba zgłoszonych problemów",
	"No vulnerabilities were found.": "Nie znaleziono podatności.",

	"Domains close to expiration": "Domeny bliskie wygaśnięcia",
	"Domain":                      "Domena",
	"expires on":                  "wygasa",
	"If the domain is not renewed, an attacker may register it and take over the services hosted there.": "Jeśli domena nie zostanie przedłużona, atakujący może ją zarejestrować i przejąć usługi na niej utrzymywane.",

	"Known vulnerabilities":         "Znane podatności",
	"Exposed administration panels": "Publicznie dostępne panele administracyjne",
	"severity":                      "poziom zagrożenia",
	"critical":                      "krytyczny",
	"high":                          "wysoki",
	"medium":                        "średni",
	"low":                           "niski",
	"info":                          "informacyjny",
}
