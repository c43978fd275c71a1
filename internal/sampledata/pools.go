package sampledata

// Value pools the generator draws from. The NOC set deliberately
// includes ROT, which carries no region name in the lookup file, so a
// generated dataset exercises the unmatched-region path of the loader.

type nocEntry struct {
	NOC    string
	Region string
	Notes  string
}

var nocPool = []nocEntry{
	{NOC: "USA", Region: "USA"},
	{NOC: "GBR", Region: "UK"},
	{NOC: "GER", Region: "Germany"},
	{NOC: "FRA", Region: "France"},
	{NOC: "ITA", Region: "Italy"},
	{NOC: "JPN", Region: "Japan"},
	{NOC: "CHN", Region: "China"},
	{NOC: "AUS", Region: "Australia"},
	{NOC: "BRA", Region: "Brazil"},
	{NOC: "KEN", Region: "Kenya"},
	{NOC: "JAM", Region: "Jamaica"},
	{NOC: "NED", Region: "Netherlands"},
	{NOC: "ESP", Region: "Spain"},
	{NOC: "CAN", Region: "Canada"},
	{NOC: "RSA", Region: "South Africa"},
	{NOC: "ROT", Region: "", Notes: "Refugee Olympic Team"},
}

type sportEntry struct {
	Sport  string
	Events []string
}

var sportPool = []sportEntry{
	{Sport: "Athletics", Events: []string{
		"Athletics Men's 100 metres",
		"Athletics Women's 100 metres",
		"Athletics Men's Marathon",
		"Athletics Women's 800 metres",
		"Athletics Men's Long Jump",
	}},
	{Sport: "Swimming", Events: []string{
		"Swimming Men's 100 metres Freestyle",
		"Swimming Women's 100 metres Freestyle",
		"Swimming Men's 200 metres Butterfly",
		"Swimming Women's 400 metres Medley",
	}},
	{Sport: "Gymnastics", Events: []string{
		"Gymnastics Women's Individual All-Around",
		"Gymnastics Men's Horizontal Bar",
		"Gymnastics Women's Balance Beam",
	}},
	{Sport: "Rowing", Events: []string{
		"Rowing Men's Coxed Eights",
		"Rowing Women's Double Sculls",
	}},
	{Sport: "Judo", Events: []string{
		"Judo Men's Half-Middleweight",
		"Judo Women's Lightweight",
	}},
	{Sport: "Cycling", Events: []string{
		"Cycling Men's Road Race, Individual",
		"Cycling Women's Sprint",
	}},
	{Sport: "Fencing", Events: []string{
		"Fencing Men's Foil, Individual",
		"Fencing Women's Sabre, Individual",
	}},
	{Sport: "Weightlifting", Events: []string{
		"Weightlifting Men's Heavyweight",
		"Weightlifting Women's Featherweight",
	}},
}

type editionEntry struct {
	Year int
	City string
}

// Summer editions only; the Games column is derived as "<year> Summer".
var editionPool = []editionEntry{
	{Year: 1960, City: "Roma"},
	{Year: 1964, City: "Tokyo"},
	{Year: 1968, City: "Mexico City"},
	{Year: 1972, City: "Munich"},
	{Year: 1976, City: "Montreal"},
	{Year: 1980, City: "Moskva"},
	{Year: 1984, City: "Los Angeles"},
	{Year: 1988, City: "Seoul"},
	{Year: 1992, City: "Barcelona"},
	{Year: 1996, City: "Atlanta"},
	{Year: 2000, City: "Sydney"},
	{Year: 2004, City: "Athina"},
	{Year: 2008, City: "Beijing"},
	{Year: 2012, City: "London"},
	{Year: 2016, City: "Rio de Janeiro"},
}

var firstNamePool = []string{
	"James", "Maria", "Wei", "Yuki", "Elena", "Carlos", "Aisha", "Lars",
	"Fatima", "Pierre", "Ingrid", "Kwame", "Sofia", "Dmitri", "Amara",
	"Hiroshi", "Lucia", "Omar", "Freya", "Mateo", "Zanele", "Viktor",
	"Chiara", "Tariq", "Astrid", "Rafael", "Mei", "Henrik", "Naomi", "Paulo",
}

var lastNamePool = []string{
	"Smith", "Garcia", "Chen", "Tanaka", "Petrov", "Silva", "Okafor",
	"Andersen", "Hassan", "Dubois", "Larsson", "Mensah", "Rossi",
	"Volkov", "Diallo", "Yamamoto", "Fernandez", "Said", "Nielsen",
	"Moreno", "Dlamini", "Kovacs", "Ricci", "Aziz", "Berg", "Costa",
	"Lin", "Jensen", "Brown", "Santos",
}
