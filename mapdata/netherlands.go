package mapdata

// Built-in road map of the Netherlands. Coordinates are kilometres on a
// planar grid anchored south-west of Middelburg; road distances are
// approximate driving distances and always dominate the straight line
// between their endpoints, which keeps the straight-line heuristic
// admissible.

var netherlandsCities = []City{
	{Name: "Amsterdam", X: 108.8, Y: 185.4},
	{Name: "Haarlem", X: 91.8, Y: 187.6},
	{Name: "Den Haag", X: 68.0, Y: 153.2},
	{Name: "Rotterdam", X: 80.2, Y: 135.4},
	{Name: "Utrecht", X: 123.8, Y: 154.3},
	{Name: "Almere", X: 130.6, Y: 185.4},
	{Name: "Amersfoort", X: 142.1, Y: 162.1},
	{Name: "Middelburg", X: 21.1, Y: 88.8},
	{Name: "Breda", X: 100.6, Y: 98.8},
	{Name: "Tilburg", X: 121.7, Y: 95.5},
	{Name: "Den Bosch", X: 136.0, Y: 111.0},
	{Name: "Eindhoven", X: 147.6, Y: 82.1},
	{Name: "Maastricht", X: 162.5, Y: 16.7},
	{Name: "Nijmegen", X: 173.4, Y: 126.5},
	{Name: "Arnhem", X: 176.8, Y: 142.1},
	{Name: "Apeldoorn", X: 181.6, Y: 167.6},
	{Name: "Enschede", X: 244.1, Y: 168.7},
	{Name: "Zwolle", X: 189.7, Y: 200.9},
	{Name: "Leeuwarden", X: 170.0, Y: 277.5},
	{Name: "Groningen", X: 222.4, Y: 279.7},
}

var netherlandsRoads = []Road{
	{From: "Amsterdam", To: "Utrecht", Km: 45},
	{From: "Amsterdam", To: "Haarlem", Km: 20},
	{From: "Amsterdam", To: "Almere", Km: 30},
	{From: "Amsterdam", To: "Den Haag", Km: 60},
	{From: "Amsterdam", To: "Amersfoort", Km: 50},
	{From: "Haarlem", To: "Den Haag", Km: 55},
	{From: "Den Haag", To: "Rotterdam", Km: 25},
	{From: "Rotterdam", To: "Utrecht", Km: 60},
	{From: "Rotterdam", To: "Breda", Km: 50},
	{From: "Middelburg", To: "Rotterdam", Km: 95},
	{From: "Middelburg", To: "Breda", Km: 100},
	{From: "Breda", To: "Tilburg", Km: 25},
	{From: "Tilburg", To: "Eindhoven", Km: 35},
	{From: "Tilburg", To: "Den Bosch", Km: 25},
	{From: "Den Bosch", To: "Eindhoven", Km: 35},
	{From: "Den Bosch", To: "Utrecht", Km: 55},
	{From: "Den Bosch", To: "Nijmegen", Km: 45},
	{From: "Eindhoven", To: "Maastricht", Km: 90},
	{From: "Maastricht", To: "Nijmegen", Km: 125},
	{From: "Nijmegen", To: "Arnhem", Km: 20},
	{From: "Utrecht", To: "Arnhem", Km: 65},
	{From: "Utrecht", To: "Amersfoort", Km: 25},
	{From: "Amersfoort", To: "Apeldoorn", Km: 45},
	{From: "Arnhem", To: "Apeldoorn", Km: 30},
	{From: "Apeldoorn", To: "Zwolle", Km: 40},
	{From: "Apeldoorn", To: "Enschede", Km: 75},
	{From: "Enschede", To: "Zwolle", Km: 75},
	{From: "Almere", To: "Zwolle", Km: 75},
	{From: "Almere", To: "Amersfoort", Km: 30},
	{From: "Zwolle", To: "Groningen", Km: 105},
	{From: "Zwolle", To: "Leeuwarden", Km: 95},
	{From: "Leeuwarden", To: "Groningen", Km: 60},
}

// Netherlands returns the built-in map. The data is static, so
// construction cannot fail.
func Netherlands() *Map {
	m, err := New(netherlandsCities, netherlandsRoads)
	if err != nil {
		panic(err)
	}
	return m
}
